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

// Package keyset implements a network service exposing an ordered integer
// multiset backed by the B-tree container. All requests are serialized
// through a single mutex; the container itself is not safe for concurrent
// mutation.
package keyset

import (
	"context"
	"errors"
	"sync"

	"github.com/EthanTran45/btree/internal/btree"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// keysetServer implements the server API for Keyset service.
type keysetServer struct {
	UnimplementedKeysetServer
	mu   sync.Mutex
	tree *btree.BTree[int64]
}

// NewKeysetServer creates a new keyset server holding a tree of the given
// order.
func NewKeysetServer(order int) KeysetServer {
	return &keysetServer{
		tree: btree.New[int64](order),
	}
}

// Insert adds another occurrence of the given key.
func (s *keysetServer) Insert(ctx context.Context, in *Key) (*empty.Empty, error) {
	glog.Infof("Insert called with key %d", in.GetKey())

	s.mu.Lock()
	s.tree.Insert(in.GetKey())
	s.mu.Unlock()

	return new(empty.Empty), nil
}

// Remove removes one occurrence of the given key.
func (s *keysetServer) Remove(ctx context.Context, in *Key) (*Removed, error) {
	glog.Infof("Remove called with key %d", in.GetKey())

	s.mu.Lock()
	removed := s.tree.Remove(in.GetKey())
	s.mu.Unlock()

	return &Removed{Removed: removed}, nil
}

// Contains reports whether the given key is present.
func (s *keysetServer) Contains(ctx context.Context, in *Key) (*Found, error) {
	glog.Infof("Contains called with key %d", in.GetKey())

	s.mu.Lock()
	found := s.tree.Has(in.GetKey())
	s.mu.Unlock()

	return &Found{Found: found}, nil
}

// Min returns the smallest key in the set.
func (s *keysetServer) Min(ctx context.Context, in *empty.Empty) (*Key, error) {
	glog.Info("Min called")

	s.mu.Lock()
	min, err := s.tree.Min()
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, btree.ErrEmptyTree) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &Key{Key: min}, nil
}

// Max returns the largest key in the set.
func (s *keysetServer) Max(ctx context.Context, in *empty.Empty) (*Key, error) {
	glog.Info("Max called")

	s.mu.Lock()
	max, err := s.tree.Max()
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, btree.ErrEmptyTree) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &Key{Key: max}, nil
}

// Len returns the number of keys currently in the set.
func (s *keysetServer) Len(ctx context.Context, in *empty.Empty) (*Length, error) {
	glog.Info("Len called")

	s.mu.Lock()
	length := s.tree.Len()
	s.mu.Unlock()

	return &Length{Length: int64(length)}, nil
}

// Range returns all keys in sorted order.
func (s *keysetServer) Range(ctx context.Context, in *empty.Empty) (*Keys, error) {
	glog.Info("Range called")

	s.mu.Lock()
	keys := s.tree.ToSlice()
	s.mu.Unlock()

	return &Keys{Keys: keys}, nil
}

// Clear removes all keys from the set.
func (s *keysetServer) Clear(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Clear called")

	s.mu.Lock()
	s.tree.Clear(true)
	s.mu.Unlock()

	return new(empty.Empty), nil
}
