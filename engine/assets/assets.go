package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/anima-bake/engine/containers"
	"github.com/spaghettifunk/anima-bake/engine/core"
)

type AssetType int

const (
	AssetTypeNone AssetType = iota
	AssetTypeSamples
	AssetTypeClip
)

type AssetInfo struct {
	Path     string
	Type     AssetType
	LastSeen time.Time
}

// AssetManager indexes the sample and clip files below a directory and keeps
// watching it. Sample files that are created or written are queued for
// baking on the pending queue.
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[AssetType]Loader
	pending *containers.RingQueue[string]

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	started  bool
	isClosed bool
}

func NewAssetManager(pending *containers.RingQueue[string]) (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[AssetType]Loader),
		pending:  pending,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	am.registerLoader(AssetTypeSamples, SamplesLoader{})
	am.registerLoader(AssetTypeClip, ClipLoader{})
	return am, nil
}

// Initialize indexes assetsDir and starts watching it. Files already present
// are indexed but not queued.
func (am *AssetManager) Initialize(assetsDir string) error {
	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}
	am.mutex.Lock()
	am.started = true
	am.mutex.Unlock()

	go am.start()
	return nil
}

// Pending is the queue of sample files waiting to be baked.
func (am *AssetManager) Pending() *containers.RingQueue[string] {
	return am.pending
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	am.mutex.RLock()
	closed := am.isClosed
	am.mutex.RUnlock()
	if closed {
		return errors.New("asset manager already closed")
	}
	return am.watchRecursive(name)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType AssetType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset reads an indexed file with the loader for its type.
func (am *AssetManager) LoadAsset(path string) (interface{}, error) {
	path = filepath.Clean(path)

	am.mutex.Lock()
	asset, exists := am.assets[path]
	if exists {
		asset.LastSeen = time.Now()
		am.assets[path] = asset
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("asset not found: %s", path)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %d", asset.Type)
	}
	return loader.Load(path)
}

// Assets lists the indexed files sorted by path.
func (am *AssetManager) Assets() []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	out := make([]AssetInfo, 0, len(am.assets))
	for _, a := range am.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Shutdown stops the watcher goroutine and waits for it to exit.
func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	started := am.started
	am.mutex.Unlock()

	if !started {
		return am.fsnotify.Close()
	}
	close(am.done)
	<-am.stopped
	return nil
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogWarn("watching %s: %s", e.Name, err)
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name, true)
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the files found on the way.
func (am *AssetManager) watchRecursive(path string) error {
	am.mutex.RLock()
	running := am.started && !am.isClosed
	am.mutex.RUnlock()

	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		// A file created together with its directory has no event of its own.
		am.handleFileEvent(walkPath, running)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string, enqueue bool) {
	path = filepath.Clean(path)
	assetType := determineAssetType(path)
	if assetType == AssetTypeNone {
		return
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path:     path,
		Type:     assetType,
		LastSeen: time.Now(),
	}
	am.mutex.Unlock()

	if !enqueue || assetType != AssetTypeSamples {
		return
	}
	added, err := am.pending.EnqueueUnique(path)
	if err != nil {
		core.LogWarn("dropping bake request for %s: %s", path, err)
		return
	}
	if added {
		core.LogDebug("queued %s for baking", path)
		ctx := core.EventContext{}
		ctx.Data.C[0] = path
		core.EventFire(core.EVENT_CODE_ASSET_CHANGED, am, ctx)
	}
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, filepath.Clean(path))
}

func determineAssetType(path string) AssetType {
	switch {
	case strings.HasSuffix(path, SamplesExt):
		return AssetTypeSamples
	case strings.HasSuffix(path, ClipExt):
		return AssetTypeClip
	default:
		return AssetTypeNone
	}
}
