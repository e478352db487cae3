package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui/styles"
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

func TestNewSearchInput(t *testing.T) {
	input := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
	assert.Equal(t, domain.SearchByTitle, input.Field())
	assert.Equal(t, 50, input.Width())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
	assert.NotNil(t, input.Init(), "blink command")
}

func TestSearchInput_Typing(t *testing.T) {
	input := NewSearchInput(nil)

	for _, k := range "golang" {
		input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}})
	}
	assert.Equal(t, "golang", input.Value())

	input.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "golan", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestSearchInput_ToggleField(t *testing.T) {
	input := NewSearchInput(nil)

	assert.Contains(t, input.View(), "Search title")

	input.ToggleField()
	assert.Equal(t, domain.SearchBySkills, input.Field())
	assert.Contains(t, input.View(), "Search skills")

	input.ToggleField()
	assert.Equal(t, domain.SearchByTitle, input.Field())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	cmd := input.Focus()
	assert.NotNil(t, cmd)
	assert.True(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())

	input.SetWidth(10)
	assert.Equal(t, 10, input.Width())
}
