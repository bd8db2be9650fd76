package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spaghettifunk/anima-bake/engine/animation"
	"github.com/spaghettifunk/anima-bake/engine/assets"
	"github.com/spaghettifunk/anima-bake/engine/containers"
	"github.com/spaghettifunk/anima-bake/engine/core"
	"github.com/spaghettifunk/anima-bake/engine/hapi"
	"github.com/spaghettifunk/anima-bake/engine/math"
	"github.com/spaghettifunk/anima-bake/engine/scene"
	"github.com/spaghettifunk/anima-bake/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is watching for sample files
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// How often the pending queue is drained in watch mode.
const pollInterval = 100 * time.Millisecond

// Engine bakes sample files into clips on a scene it owns. Bakes run on the
// goroutine calling Bake or Watch.
type Engine struct {
	mutex        sync.Mutex
	currentStage Stage
	app          *Application
	config       *ApplicationConfig
	scene        *scene.Scene
	assets       map[int]*hapi.Asset
	pending      *containers.RingQueue[string]
	assetManager *assets.AssetManager
	clock        *core.Clock
	quit         context.CancelFunc
}

func New(app *Application) (*Engine, error) {
	if app == nil || app.ApplicationConfig == nil {
		return nil, fmt.Errorf("engine needs an application with a configuration")
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		app:          app,
		config:       app.ApplicationConfig,
		scene:        scene.NewScene(app.ApplicationConfig.Name),
		assets:       make(map[int]*hapi.Asset),
		pending:      containers.NewRingQueue[string](app.ApplicationConfig.QueueSize),
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Initialize() error {
	e.setStage(EngineStageInitializing)
	core.SetLogLevel(e.config.LogLevel)

	// initialize events
	if !core.EventInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_CLIP_ASSIGNED, e, e.onEvent)

	if e.app.FnInitialize != nil {
		if err := e.app.FnInitialize(); err != nil {
			return err
		}
	}
	e.setStage(EngineStageInitialized)
	core.LogInfo("%s initialized", e.config.Name)
	return nil
}

// Stage returns the current lifecycle stage.
func (e *Engine) Stage() Stage {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.currentStage
}

func (e *Engine) setStage(s Stage) {
	e.mutex.Lock()
	e.currentStage = s
	e.mutex.Unlock()
}

// Scene is the scene baked clips are attached to.
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Bake loads a sample file and bakes it into a clip on the scene.
func (e *Engine) Bake(samplesPath string) (*animation.Clip, error) {
	sf, err := assets.LoadSamples(samplesPath)
	if err != nil {
		return nil, err
	}
	return e.BakeSamples(sf)
}

// BakeToFile bakes samplesPath and writes the clip to clipPath.
func (e *Engine) BakeToFile(samplesPath, clipPath string) (*animation.Clip, error) {
	clip, err := e.Bake(samplesPath)
	if err != nil {
		return nil, err
	}
	if err := e.writeClip(samplesPath, clipPath, clip); err != nil {
		return nil, err
	}
	return clip, nil
}

func (e *Engine) writeClip(samplesPath, clipPath string, clip *animation.Clip) error {
	if err := assets.SaveClip(clipPath, clip); err != nil {
		return err
	}
	core.LogInfo("wrote %s", clipPath)

	if e.app.FnOnClipBaked != nil {
		return e.app.FnOnClipBaked(samplesPath, clip)
	}
	return nil
}

// BakeSamples runs one bake session over sf. The object keeps its node
// between bakes, so baking the same object again replaces its clip.
func (e *Engine) BakeSamples(sf *assets.SampleFile) (*animation.Clip, error) {
	e.clock.Start()
	defer e.clock.Stop()

	asset := e.asset(sf.Asset)
	name := sf.Object.Name
	if name == "" {
		name = e.config.NodeName
	}
	oc, ok := asset.Object(sf.Object.ID)
	if ok {
		oc.Init(asset.ID, asset, sf.Object.ID, name, sf.Object.Visible)
	} else {
		oc = asset.AddObject(sf.Object.ID, name, sf.Object.Visible)
	}

	settings := hapi.BakeSettings{
		ClipName:  e.config.ClipName,
		FrameRate: e.config.FrameRate,
		WrapMode:  e.config.WrapMode,
	}
	if sf.FrameRate > 0 {
		settings.FrameRate = sf.FrameRate
	}
	oc.SetSettings(settings)

	var parent *scene.Node
	if sf.Parent != nil {
		parent = scene.NewNode(name + ".parent")
		defer parent.Destroy()
		parent.Transform.SetPositionRotationScale(
			math.NewVec3FromArray(sf.Parent.Position),
			math.NewQuatFromArray(sf.Parent.RotationQuaternion).Normalize(),
			math.NewVec3FromArray(sf.Parent.Scale),
		)
	}

	src := hapi.NewRecordedSource(sf.Samples)
	oc.BeginBakeAnimation()
	oc.BakeFromSource(src, src.Times(), parent)
	if !oc.EndBakeAnimation() {
		return nil, fmt.Errorf("no clip produced for object %q", name)
	}

	e.clock.Update()
	core.LogDebug("bake of %q took %s", name, e.clock.Elapsed())
	return oc.LastClip(), nil
}

func (e *Engine) asset(ref assets.AssetRef) *hapi.Asset {
	if a, ok := e.assets[ref.ID]; ok {
		return a
	}
	name := ref.Name
	if name == "" {
		name = fmt.Sprintf("asset_%d", ref.ID)
	}
	a := hapi.NewAsset(ref.ID, name)
	e.scene.Root.AddChild(a.Node)
	e.assets[ref.ID] = a
	return a
}

// ClipPath is where watch mode writes the clip baked from a sample file.
func ClipPath(samplesPath string) string {
	return strings.TrimSuffix(samplesPath, assets.SamplesExt) + assets.ClipExt
}

// Watch bakes every sample file created or modified under the configured
// directory until ctx is cancelled or an application quit event is fired.
// Bakes run on the calling goroutine, clip files are written by a pool of
// workers.
func (e *Engine) Watch(ctx context.Context) error {
	jobs, err := systems.NewJobSystem(e.config.Workers, e.config.QueueSize)
	if err != nil {
		return err
	}
	defer jobs.Shutdown()

	am, err := assets.NewAssetManager(e.pending)
	if err != nil {
		return err
	}
	if err := am.Initialize(e.config.WatchDir); err != nil {
		am.Shutdown()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.mutex.Lock()
	e.assetManager = am
	e.quit = cancel
	e.currentStage = EngineStageRunning
	e.mutex.Unlock()

	defer func() {
		e.mutex.Lock()
		e.assetManager = nil
		e.quit = nil
		if e.currentStage == EngineStageRunning {
			e.currentStage = EngineStageInitialized
		}
		e.mutex.Unlock()
		am.Shutdown()
	}()

	core.LogInfo("watching %s for %s files", e.config.WatchDir, assets.SamplesExt)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.drain(jobs)
			return nil
		case <-ticker.C:
			e.drain(jobs)
		}
	}
}

// drain bakes everything waiting on the queue and hands the clips to jobs.
// Failures are logged and the file is dropped until it changes again.
func (e *Engine) drain(jobs *systems.JobSystem) {
	for {
		path, err := e.pending.Dequeue()
		if err != nil {
			return
		}
		clip, err := e.Bake(path)
		if err != nil {
			core.LogError("baking %s: %s", path, err)
			continue
		}
		out := ClipPath(path)
		jobs.Submit(systems.JobTask{
			Name: out,
			Run: func() error {
				return e.writeClip(path, out, clip)
			},
		})
	}
}

func (e *Engine) Shutdown() error {
	e.mutex.Lock()
	e.currentStage = EngineStageShuttingDown
	am := e.assetManager
	e.assetManager = nil
	if e.quit != nil {
		e.quit()
		e.quit = nil
	}
	e.mutex.Unlock()

	if am != nil {
		if err := am.Shutdown(); err != nil {
			return err
		}
	}
	core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, e)
	core.EventUnregister(core.EVENT_CODE_CLIP_ASSIGNED, e)
	if err := core.EventShutdown(); err != nil {
		return err
	}

	if e.app.FnShutdown != nil {
		if err := e.app.FnShutdown(); err != nil {
			return err
		}
	}
	e.setStage(EngineStageUninitialized)
	return nil
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listener interface{}, data core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.mutex.Lock()
		if e.quit != nil {
			e.quit()
		}
		e.mutex.Unlock()
		return true
	case core.EVENT_CODE_CLIP_ASSIGNED:
		core.LogDebug("clip %q (%.3fs) assigned to %q", data.Data.C[1], data.Data.F32[0], data.Data.C[0])
	}
	// Let other listeners see the event too.
	return false
}
