package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodify/models"
)

const oceanReply = "background: #1A2B3C\npalette: #112233, #223344, #334455, #445566, #556677\ntheme: Ocean Calm"

func TestParseResponseWellFormed(t *testing.T) {
	p, err := ParseResponse(oceanReply)
	require.NoError(t, err)

	assert.Equal(t, "#1A2B3C", p.Background)
	assert.Equal(t, [models.PaletteSize]string{"#112233", "#223344", "#334455", "#445566", "#556677"}, p.Colors)
	assert.Equal(t, "Ocean Calm", p.Theme)
}

func TestParseResponseTolerance(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  models.Palette
	}{
		{
			name:  "lines out of order with chatter",
			reply: "Sure! Here you go:\n\ntheme: Desert Dusk\npalette: #aa0000,#bb1111 , #cc2222,#dd3333,  #ee4444\nbackground:   #101010  \nEnjoy.",
			want: models.Palette{
				Background: "#101010",
				Colors:     [5]string{"#aa0000", "#bb1111", "#cc2222", "#dd3333", "#ee4444"},
				Theme:      "Desert Dusk",
			},
		},
		{
			name:  "indented lines and CRLF endings",
			reply: "  background: #000000\r\n  palette: #111111, #222222, #333333, #444444, #555555\r\n  theme: Night Owl\r\n",
			want: models.Palette{
				Background: "#000000",
				Colors:     [5]string{"#111111", "#222222", "#333333", "#444444", "#555555"},
				Theme:      "Night Owl",
			},
		},
		{
			name:  "missing hash is added",
			reply: "background: FFFFFF\npalette: 111111, #222, 333333, 444444, 555555\ntheme: Paper",
			want: models.Palette{
				Background: "#FFFFFF",
				Colors:     [5]string{"#111111", "#222", "#333333", "#444444", "#555555"},
				Theme:      "Paper",
			},
		},
		{
			name:  "first matching line wins",
			reply: oceanReply + "\nbackground: #FFFFFF\ntheme: Ignored",
			want: models.Palette{
				Background: "#1A2B3C",
				Colors:     [5]string{"#112233", "#223344", "#334455", "#445566", "#556677"},
				Theme:      "Ocean Calm",
			},
		},
		{
			name:  "theme keeps text after a second colon",
			reply: "background: #1A2B3C\npalette: #112233, #223344, #334455, #445566, #556677\ntheme: Blue: Hour",
			want: models.Palette{
				Background: "#1A2B3C",
				Colors:     [5]string{"#112233", "#223344", "#334455", "#445566", "#556677"},
				Theme:      "Blue: Hour",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.reply)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseResponseErrors(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantMsg string
	}{
		{"missing background", "palette: #112233, #223344, #334455, #445566, #556677\ntheme: X", `missing "background:" line`},
		{"missing palette", "background: #1A2B3C\ntheme: X", `missing "palette:" line`},
		{"missing theme", "background: #1A2B3C\npalette: #112233, #223344, #334455, #445566, #556677", `missing "theme:" line`},
		{"empty reply", "", `missing "background:" line`},
		{"error text from api", "Error: 401, Unauthorized", `missing "background:" line`},
		{"four colors", "background: #1A2B3C\npalette: #112233, #223344, #334455, #445566\ntheme: X", "expected 5 palette colors, got 4"},
		{"six colors", "background: #1A2B3C\npalette: #112233, #223344, #334455, #445566, #556677, #667788\ntheme: X", "expected 5 palette colors, got 6"},
		{"bad palette token", "background: #1A2B3C\npalette: #112233, #GGGGGG, #334455, #445566, #556677\ntheme: X", "bad palette color 2"},
		{"empty palette token", "background: #1A2B3C\npalette: #112233, , #334455, #445566, #556677\ntheme: X", "bad palette color 2"},
		{"bad background", "background: blue\npalette: #112233, #223344, #334455, #445566, #556677\ntheme: X", "bad background color"},
		{"empty theme", "background: #1A2B3C\npalette: #112233, #223344, #334455, #445566, #556677\ntheme:   ", "empty theme name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.reply)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
