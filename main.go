// Copyright 2024 Ethan Tran
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:generate protoc --proto_path=proto/ --go_out=keyset/ --go_opt=paths=source_relative --go-grpc_out=keyset/ --go-grpc_opt=paths=source_relative keyset.proto

// Package main implements the keyset server, which exposes an ordered
// integer multiset backed by a B-tree over gRPC.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/EthanTran45/btree/keyset"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	order := flag.Int("order", 16, "The B-tree order")
	flag.Parse()
	defer glog.Flush()

	if err := serve(*port, *order); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port, order int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer(order)
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func newServer(order int) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func(done <-chan os.Signal, server *grpc.Server) {
		<-done
		server.GracefulStop()
	}(done, server)

	keyset.RegisterKeysetServer(server, keyset.NewKeysetServer(order))

	return server
}
