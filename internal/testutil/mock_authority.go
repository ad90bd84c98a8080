//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nowauno/unoterm/internal/game/card"
	"github.com/nowauno/unoterm/internal/network/authority"
)

// MockAuthority 实现 client.Authority 的 mock
type MockAuthority struct {
	mock.Mock
}

func (m *MockAuthority) Start(ctx context.Context, players []string) (*authority.StartResult, error) {
	args := m.Called(ctx, players)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authority.StartResult), args.Error(1)
}

func (m *MockAuthority) Hand(ctx context.Context, gameID, player string) ([]card.Card, error) {
	args := m.Called(ctx, gameID, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]card.Card), args.Error(1)
}

func (m *MockAuthority) TopCard(ctx context.Context, gameID string) (card.Card, error) {
	args := m.Called(ctx, gameID)
	return args.Get(0).(card.Card), args.Error(1)
}

func (m *MockAuthority) PlayCard(ctx context.Context, gameID string, played card.Card, wildColor card.Color) (*authority.PlayResult, error) {
	args := m.Called(ctx, gameID, played, wildColor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authority.PlayResult), args.Error(1)
}

func (m *MockAuthority) DrawCard(ctx context.Context, gameID, player string) (*authority.DrawResult, error) {
	args := m.Called(ctx, gameID, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authority.DrawResult), args.Error(1)
}
