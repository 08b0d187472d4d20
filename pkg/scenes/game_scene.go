package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/game"
	"github.com/decker502/mergeball/pkg/systems"
	"github.com/decker502/mergeball/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// HintFontSize 操作提示字号
	HintFontSize = 13.0
	// BestScoreOffsetY 最高分相对分数文字的下移距离
	BestScoreOffsetY = 28.0
)

var (
	scoreTextColor = color.RGBA{R: 70, G: 45, B: 30, A: 255}
	hintTextColor  = color.RGBA{R: 120, G: 95, B: 80, A: 255}
	recordColor    = color.RGBA{R: 214, G: 60, B: 40, A: 255}
)

// GameScene 合成球主游戏场景
//
// 持有一局游戏的 MergeWorld，负责把设备输入交给生成器、
// 把合成与投放事件转换为音效，并绘制分数。
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	gameState       *game.GameState

	world        *MergeWorld
	input        *utils.PlayerInput
	renderSystem *systems.RenderSystem

	scoreFont *text.GoTextFace
	hintFont  *text.GoTextFace
	hint      string

	bestAtStart int
}

// NewGameScene 创建游戏场景并生成第一个球
//
// 参数:
//   - rm: 资源管理器（字体）
//   - sm: 场景管理器（重开）
//   - cfg: 游戏配置
//   - seed: 生成器随机种子
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager, cfg *config.GameConfig, seed uint64) *GameScene {
	gameState := game.GetGameState()
	input := utils.NewPlayerInput()
	world := NewMergeWorld(cfg, game.NewRandomSource(seed), input)

	scene := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		gameState:       gameState,
		world:           world,
		input:           input,
		renderSystem:    systems.NewRenderSystem(world.EntityManager(), world.Gate(), cfg.Physics, cfg.Spawner.SpawnHeight),
		hint:            utils.ControlsHint(),
		bestAtStart:     gameState.GetBestScore().Best(),
	}

	gameState.GetBestScore().Attach(world.Score())

	world.Combination().OnMerge(func(e systems.MergeEvent) {
		scene.gameState.GetAudioManager().PlayMerge(e.Level)
	})
	world.Spawner().OnDrop(func(ecs.EntityID) {
		scene.gameState.GetAudioManager().PlayDrop()
	})

	scene.loadFonts()

	if err := world.Start(); err != nil {
		log.Printf("[GameScene] Failed to spawn first ball: %v", err)
	}
	log.Printf("[GameScene] New game started (seed=%d, best=%d)", seed, scene.bestAtStart)
	return scene
}

func (s *GameScene) loadFonts() {
	var err error
	if s.scoreFont, err = s.resourceManager.GetFont(config.ScoreFontSize); err != nil {
		log.Printf("[GameScene] Warning: score font unavailable: %v", err)
	}
	if s.hintFont, err = s.resourceManager.GetFont(HintFontSize); err != nil {
		log.Printf("[GameScene] Warning: hint font unavailable: %v", err)
	}
}

// World 返回本局的模拟状态
func (s *GameScene) World() *MergeWorld {
	return s.world
}

// Update 处理场景快捷键与输入，然后推进一帧模拟
func (s *GameScene) Update(deltaTime float64) {
	if utils.IsRestartJustPressed() {
		log.Printf("[GameScene] Restart requested (score=%d)", s.world.Score().Score())
		s.sceneManager.RequestRestart()
	}
	if utils.IsMuteJustPressed() {
		s.ToggleSound()
	}

	if x, ok := s.world.HeldBallX(); ok {
		s.input.SetAnchor(x)
	}
	s.input.Poll()
	s.world.Step(deltaTime)
}

// Draw 绘制球、容器与分数
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.drawScore(screen)
	s.drawHint(screen)
}

func (s *GameScene) drawScore(screen *ebiten.Image) {
	if s.scoreFont == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScoreTextX, config.ScoreTextY)
	op.ColorScale.ScaleWithColor(scoreTextColor)
	text.Draw(screen, s.world.Score().Text(), s.scoreFont, op)

	best := s.gameState.GetBestScore().Best()
	bestColor := color.Color(scoreTextColor)
	if best > s.bestAtStart {
		bestColor = recordColor
	}
	op = &text.DrawOptions{}
	op.GeoM.Translate(config.ScoreTextX, config.ScoreTextY+BestScoreOffsetY)
	op.ColorScale.ScaleWithColor(bestColor)
	text.Draw(screen, fmt.Sprintf("Best: %d", best), s.scoreFont, op)
}

func (s *GameScene) drawHint(screen *ebiten.Image) {
	if s.hintFont == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScoreTextX, config.GameWindowHeight-HintFontSize-8)
	op.ColorScale.ScaleWithColor(hintTextColor)
	text.Draw(screen, s.hint, s.hintFont, op)
}

// ToggleSound 切换音效开关并立即保存
func (s *GameScene) ToggleSound() {
	sm := s.gameState.GetSettingsManager()
	err := sm.Change(func(gs *game.GameSettings) {
		gs.SoundEnabled = !gs.SoundEnabled
	})
	if err != nil {
		log.Printf("[GameScene] Warning: failed to save settings: %v", err)
	}
	log.Printf("[GameScene] Sound enabled: %v", sm.GetSettings().SoundEnabled)
}

// SaveOnExit 保存最高分与设置
func (s *GameScene) SaveOnExit() bool {
	if err := s.gameState.Save(); err != nil {
		log.Printf("[GameScene] Save failed: %v", err)
		return false
	}
	return true
}
