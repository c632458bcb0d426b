package systems

import (
	"log"

	"github.com/decker502/factorytutor/pkg/components"
	"github.com/decker502/factorytutor/pkg/ecs"
	"github.com/decker502/factorytutor/pkg/tutorial"
)

// TutorialSystem 教学系统
// 每帧驱动教学引擎，并把引擎状态同步到 ECS 组件，
// 渲染系统只读取组件，不直接依赖引擎
type TutorialSystem struct {
	entityManager  *ecs.EntityManager
	engine         *tutorial.Engine
	tutorialEntity ecs.EntityID // 挂载 TutorialComponent 与 TutorialTextComponent
}

// NewTutorialSystem 创建教学系统实例
// 参数：
//   - em: EntityManager 实例
//   - engine: 已 Reset 的教学引擎
//
// 返回：
//   - *TutorialSystem: 系统实例
func NewTutorialSystem(em *ecs.EntityManager, engine *tutorial.Engine) *TutorialSystem {
	tutorialEntity := em.CreateEntity()
	ecs.AddComponent(em, tutorialEntity, &components.TutorialComponent{IsActive: true})
	ecs.AddComponent(em, tutorialEntity, &components.TutorialTextComponent{BackgroundAlpha: 0.75})

	s := &TutorialSystem{
		entityManager:  em,
		engine:         engine,
		tutorialEntity: tutorialEntity,
	}
	s.sync(0)

	log.Printf("[TutorialSystem] Initialized with %d stages (Entity ID: %d)", engine.StageCount(), tutorialEntity)
	return s
}

// Update 更新教学系统状态
// 参数：
//   - dt: 时间增量（秒）
func (s *TutorialSystem) Update(dt float64) {
	tc, ok := ecs.GetComponent[*components.TutorialComponent](s.entityManager, s.tutorialEntity)
	if !ok || !tc.IsActive {
		return
	}

	s.engine.Update()
	s.sync(dt)
}

// NextSentence 翻到下一句
func (s *TutorialSystem) NextSentence() {
	s.engine.NextSentence()
	s.sync(0)
}

// PrevSentence 翻到上一句
func (s *TutorialSystem) PrevSentence() {
	s.engine.PrevSentence()
	s.sync(0)
}

// SetActive 启用或暂停教学（暂停时引擎不再推进，文本保持不变）
func (s *TutorialSystem) SetActive(active bool) {
	if tc, ok := ecs.GetComponent[*components.TutorialComponent](s.entityManager, s.tutorialEntity); ok {
		tc.IsActive = active
	}
}

// Entity 返回教学实体ID
func (s *TutorialSystem) Entity() ecs.EntityID {
	return s.tutorialEntity
}

// sync 把引擎状态写入组件
// 文本变化时显示时间归零，否则累加 dt
func (s *TutorialSystem) sync(dt float64) {
	tc, ok := ecs.GetComponent[*components.TutorialComponent](s.entityManager, s.tutorialEntity)
	if !ok {
		return
	}
	stage := s.engine.CurrentStage()
	if tc.StageName != stage.Name() && tc.StageName != "" {
		log.Printf("[TutorialSystem] Stage changed: %s -> %s", tc.StageName, stage.Name())
	}
	tc.StageIndex = s.engine.StageIndex()
	tc.StageName = stage.Name()
	tc.StageCount = s.engine.StageCount()
	tc.SentenceIndex = s.engine.SentenceIndex()
	tc.SentenceCount = stage.SentenceCount()
	tc.CanPrev = s.engine.CanPrevSentence()
	tc.CanNext = s.engine.CanNextSentence()

	textComp, ok := ecs.GetComponent[*components.TutorialTextComponent](s.entityManager, s.tutorialEntity)
	if !ok {
		return
	}
	text := s.engine.Text()
	if text != textComp.Text {
		textComp.Text = text
		textComp.DisplayTime = 0
		return
	}
	textComp.DisplayTime += dt
}
