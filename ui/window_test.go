package ui

import (
	"image"
	"testing"
)

func TestDropdownRect(t *testing.T) {
	trigger := image.Rect(100, 100, 220, 130)
	cases := []struct {
		name               string
		trigger            image.Rectangle
		contentW, contentH int
		want               image.Rectangle
	}{
		{"below", trigger, 150, 80, image.Rect(100, 130, 300, 210)},
		{"wider content", trigger, 260, 80, image.Rect(100, 130, 360, 210)},
		{"above when no room below", image.Rect(100, 540, 220, 570), 150, 80, image.Rect(100, 460, 300, 540)},
		{"shift left at right edge", image.Rect(700, 100, 790, 130), 150, 80, image.Rect(600, 130, 800, 210)},
		{"cap at three quarters", trigger, 150, 1000, image.Rect(100, 130, 300, 580)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := dropdownRect(c.trigger, c.contentW, c.contentH, 800, 600)
			if got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}
