package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySelect_SetValue(t *testing.T) {
	s := &MemorySelect{}
	s.AddOption("USD", "USD")
	s.AddOption("EUR", "EUR")

	s.SetValue("EUR")
	require.Equal(t, "EUR", s.Value())

	s.SetValue("XYZ")
	require.Empty(t, s.Value())

	s.SetValue("USD")
	s.ClearOptions()
	require.Empty(t, s.Value())
	require.Empty(t, s.Options())
}

func TestMemorySelect_OptionsAreCopied(t *testing.T) {
	s := &MemorySelect{}
	s.AddOption("USD", "USD")

	opts := s.Options()
	opts[0].Value = "changed"

	require.Equal(t, "USD", s.Options()[0].Value)
}

func TestMemoryPage_SnapshotDrainsNotifications(t *testing.T) {
	page := NewMemoryPage()
	page.Notifier.Notify("first")
	page.Notifier.Notify("second")
	page.Result.SetText("1 USD = 0.90 EUR")
	page.SourceFlag.SetSource("https://flagcdn.com/w40/us.png")

	state := page.Snapshot()
	require.Equal(t, []string{"first", "second"}, state.Notifications)
	require.Equal(t, "1 USD = 0.90 EUR", state.Result)
	require.Equal(t, "https://flagcdn.com/w40/us.png", state.SourceFlag)
	require.NotNil(t, state.SourceOptions)
	require.NotNil(t, state.TargetOptions)

	require.Empty(t, page.Snapshot().Notifications)
}
