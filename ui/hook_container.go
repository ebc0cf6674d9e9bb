package ui

import (
	"image"

	"github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// HookContainer wraps a container so a widget can do per-frame work (such as
// redrawing an offscreen image) before its children update.
type HookContainer struct {
	child      *widget.Container
	updateHook func(*HookContainer)
}

type HookContainerOpt func(c *HookContainer)

type HookContainerOptions struct{}

var HookContainerOpts HookContainerOptions

// UpdateHook replaces the child's Update. The hook must call UpdateChild
// itself if the child should still update.
func (o HookContainerOptions) UpdateHook(hook func(*HookContainer)) HookContainerOpt {
	return func(c *HookContainer) {
		c.updateHook = hook
	}
}

func (o HookContainerOptions) Child(child *widget.Container) HookContainerOpt {
	return func(c *HookContainer) {
		c.child = child
	}
}

func NewHookContainer(opts ...HookContainerOpt) *HookContainer {
	c := &HookContainer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HookContainer) Update() {
	if c.updateHook != nil {
		c.updateHook(c)
		return
	}
	c.UpdateChild()
}

func (c *HookContainer) UpdateChild() {
	c.child.Update()
}

func (c *HookContainer) Render(screen *ebiten.Image) {
	c.child.Render(screen)
}

func (c *HookContainer) GetWidget() *widget.Widget {
	return c.child.GetWidget()
}

func (c *HookContainer) PreferredSize() (int, int) {
	return c.child.PreferredSize()
}

func (c *HookContainer) SetLocation(rect image.Rectangle) {
	c.child.SetLocation(rect)
}

func (c *HookContainer) WidgetAt(x, y int) widget.HasWidget {
	return c.child.WidgetAt(x, y)
}

func (c *HookContainer) SetupInputLayer(def input.DeferredSetupInputLayerFunc) {
	c.child.SetupInputLayer(def)
}
