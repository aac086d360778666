package theme

import (
	"image/color"
	"testing"
)

func TestEmotionColor(t *testing.T) {
	cases := []struct {
		emotion string
		want    color.Color
	}{
		{"joy", Success},
		{"satisfaction", Secondary},
		{"concentration", Primary},
		{"confusion", Accent},
		{"frustration", Error},
		{"unknown-mood", TextDim},
	}
	for _, tc := range cases {
		if got := EmotionColor(tc.emotion); got != tc.want {
			t.Errorf("EmotionColor(%q) = %v, want %v", tc.emotion, got, tc.want)
		}
	}
}
