//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.armadness -o build/android/armadness.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ARMadness.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/armadness/pkg/app"
	"github.com/gonewx/armadness/pkg/embedded"
)

var gameApp *app.App

func init() {
	embedded.Init(assetsFS, dataFS)

	var err error
	gameApp, err = app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// SessionInterrupted 平台回调：跟踪会话被中断（来电、切到后台）
func SessionInterrupted(reason string) {
	if gameApp != nil {
		gameApp.Interrupt(reason)
	}
}

// SessionInterruptionEnded 平台回调：中断结束
func SessionInterruptionEnded() {
	if gameApp != nil {
		gameApp.InterruptionEnded()
	}
}

// SessionFailed 平台回调：跟踪失败，按中断处理
func SessionFailed(message string) {
	log.Printf("[Mobile] Tracking failed: %s", message)
	if gameApp != nil {
		gameApp.Interrupt(message)
	}
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
