package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/armadness/pkg/game"
	"github.com/gonewx/armadness/pkg/utils"
)

var (
	colorButtonFill   = color.RGBA{R: 40, G: 140, B: 220, A: 230}
	colorButtonHover  = color.RGBA{R: 70, G: 170, B: 250, A: 240}
	colorButtonBorder = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	colorText         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Button 矩形文字按钮（屏幕坐标）
type Button struct {
	Label      string
	X, Y, W, H float64
}

// Contains 判断点是否在按钮内
func (b *Button) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Draw 绘制按钮；hovered 为 true 时高亮
func (b *Button) Draw(screen *ebiten.Image, face text.Face, hovered bool) {
	fill := colorButtonFill
	if hovered {
		fill = colorButtonHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colorButtonBorder, true)
	utils.DrawCenteredText(screen, b.Label, face, b.X+b.W/2, b.Y+b.H/2, colorText)
}

// loadFace 加载内置字体；失败时返回 nil，文字不绘制
func loadFace(rm *game.ResourceManager, size float64) text.Face {
	if rm == nil {
		return nil
	}
	face, err := rm.DefaultFont(size)
	if err != nil {
		log.Printf("[Scenes] Warning: %v", err)
		return nil
	}
	return face
}
