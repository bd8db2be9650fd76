package hapi

import (
	"github.com/spaghettifunk/anima-bake/engine/animation"
	"github.com/spaghettifunk/anima-bake/engine/core"
	"github.com/spaghettifunk/anima-bake/engine/scene"
)

const (
	DefaultObjectID   = -1
	DefaultObjectName = "object_name"
)

// BakeSettings tune the clips produced by EndBakeAnimation.
type BakeSettings struct {
	// ClipName names the clip. Empty means the object name.
	ClipName  string
	FrameRate float32
	WrapMode  animation.WrapMode
}

// ObjectControl tracks the identity and visibility of one remote object and
// bakes its transform samples into a clip on the object's node.
type ObjectControl struct {
	Control

	objectID      int
	objectName    string
	objectVisible bool

	node     *scene.Node
	settings BakeSettings
	curves   *animation.CurveCollection
	metrics  *core.BakeMetrics
	clock    *core.Clock
	lastClip *animation.Clip
}

// NewObjectControl creates a record with default fields. node is where
// baked clips are attached and may be nil for a pure data record.
func NewObjectControl(node *scene.Node) *ObjectControl {
	oc := &ObjectControl{
		node:     node,
		settings: BakeSettings{FrameRate: 60},
		metrics:  core.NewBakeMetrics(),
		clock:    core.NewClock(),
	}
	oc.Reset()
	return oc
}

// Reset restores every field to its default.
func (oc *ObjectControl) Reset() {
	oc.Control.Reset()

	oc.objectID = DefaultObjectID
	oc.objectName = DefaultObjectName
	oc.objectVisible = false
}

// Accessors for the object fields and the bake target. Setters change a
// single field and fire no event, unlike Init.

func (oc *ObjectControl) ObjectID() int {
	return oc.objectID
}

func (oc *ObjectControl) SetObjectID(id int) {
	oc.objectID = id
}

func (oc *ObjectControl) ObjectName() string {
	return oc.objectName
}

func (oc *ObjectControl) SetObjectName(n string) {
	oc.objectName = n
}

func (oc *ObjectControl) ObjectVisible() bool {
	return oc.objectVisible
}

func (oc *ObjectControl) SetObjectVisible(v bool) {
	oc.objectVisible = v
}

func (oc *ObjectControl) Node() *scene.Node {
	return oc.node
}

func (oc *ObjectControl) SetNode(node *scene.Node) {
	oc.node = node
}

func (oc *ObjectControl) Settings() BakeSettings {
	return oc.settings
}

func (oc *ObjectControl) SetSettings(s BakeSettings) {
	oc.settings = s
}

// Metrics exposes the counters of the current or last bake.
func (oc *ObjectControl) Metrics() *core.BakeMetrics {
	return oc.metrics
}

// InitFrom copies the asset binding and object fields of other.
func (oc *ObjectControl) InitFrom(other *ObjectControl) {
	oc.Init(other.AssetID(), other.Asset(), other.objectID, other.objectName, other.objectVisible)
}

// Init overwrites the asset binding and all object fields.
func (oc *ObjectControl) Init(assetID int, asset *Asset, objectID int, objectName string, objectVisible bool) {
	oc.SetAssetID(assetID)
	oc.SetAsset(asset)
	oc.objectID = objectID
	oc.objectName = objectName
	oc.objectVisible = objectVisible

	ctx := core.EventContext{}
	ctx.Data.I64[0] = int64(objectID)
	ctx.Data.I64[1] = int64(assetID)
	ctx.Data.C[0] = objectName
	core.EventFire(core.EVENT_CODE_OBJECT_CHANGED, oc, ctx)
}
