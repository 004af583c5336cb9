// Package mocks provides gomock implementations of the client's interfaces.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./cart
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	remote := mocks.NewMockRemote(ctrl)
//	remote.EXPECT().GetCart(gomock.Any()).Return(items, nil)
package mocks
