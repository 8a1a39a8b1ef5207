package components

import "image/color"

// HintLabelComponent 槽位下方的提示文字样式
type HintLabelComponent struct {
	Text  string
	Size  float64
	Color color.Color
}
