// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/scene"
)

const (
	// machinePrefix is the name prefix of machine groups in the scene.
	machinePrefix = "machine-"

	floorSize   = 40
	gridSpacing = 1
	gridLine    = 0.02

	stripeTexture = "belt-stripes"
)

var gridColor = color.RGBA{0x33, 0x41, 0x55, 0xff} // #334155

// world builds and drives the xyz scene graph for a [scene.Composer].
type world struct {
	comp *scene.Composer
	sc   *xyz.Scene

	box, beacon, post, floor xyz.Mesh

	stripes *xyz.TextureBase

	// hovered is the entity currently under the pointer, or nil.
	hovered *scene.MachineEntity
}

func newWorld(sc *xyz.Scene, comp *scene.Composer) *world {
	wd := &world{comp: comp, sc: sc}
	wd.build()
	return wd
}

func (wd *world) build() {
	sc := wd.sc
	sc.Background = colors.Uniform(factory.FloorColor)

	xyz.NewAmbient(sc, "ambient", 0.3, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(10, 20, 10)
	pt := xyz.NewPoint(sc, "point", 0.5, xyz.DirectSun)
	pt.Pos.Set(0, 10, 0)
	pt.Color = factory.Blue
	spot := xyz.NewSpot(sc, "spot", 1, xyz.DirectSun)
	spot.Pose.Pos.Set(15, 15, 15)
	spot.LookAtOrigin()
	spot.CutoffAngle = 17

	wd.box = xyz.NewBox(sc, "unit-box", 1, 1, 1)
	wd.beacon = xyz.NewSphere(sc, "beacon", scene.BeaconRadius, 16)
	wd.post = xyz.NewCylinder(sc, "post", 0.4, 0.05, 16, 1, true, true)
	wd.floor = xyz.NewPlane(sc, "floor", floorSize, floorSize)

	wd.stripes = &xyz.TextureBase{Name: stripeTexture, RGBA: stripeImage()}
	sc.SetTexture(wd.stripes)

	sc.Camera.Pose.Pos = scene.DefaultCameraPos
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.Camera.FOV = scene.CameraFOV
	sc.SaveCamera("default")

	sc.Maker(func(p *tree.Plan) {
		wd.makeFloor(p)
		for _, me := range wd.comp.MachineEntities() {
			wd.makeMachine(p, me)
		}
		for i, be := range wd.comp.BeltEntities() {
			wd.makeBelt(p, i, be)
		}
	})
	sc.Update()
}

// stripeImage returns the belt surface texture: dark bands across a
// lighter ground, tiled along the belt length.
func stripeImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 16))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x37, 0x41, 0x51, 0xff}), image.Point{}, draw.Src)
	band := image.NewUniform(color.RGBA{0x11, 0x18, 0x27, 0xff})
	for x := 0; x < 64; x += 16 {
		draw.Draw(img, image.Rect(x, 0, x+8, 16), band, image.Point{}, draw.Src)
	}
	return img
}

func (wd *world) makeFloor(p *tree.Plan) {
	tree.AddAt(p, "floor", func(sld *xyz.Solid) {
		sld.SetMesh(wd.floor).SetColor(factory.FloorColor)
		sld.Pose.Pos.Set(0, 0, 0)
	})
	n := floorSize / gridSpacing
	half := float32(floorSize) / 2
	for i := 0; i <= n; i++ {
		off := float32(i*gridSpacing) - half
		tree.AddAt(p, "grid-x-"+strconv.Itoa(i), func(sld *xyz.Solid) {
			sld.SetMesh(wd.box).SetColor(gridColor)
			sld.SetScale(floorSize, gridLine, gridLine).SetPos(0, 0.01, off)
		})
		tree.AddAt(p, "grid-z-"+strconv.Itoa(i), func(sld *xyz.Solid) {
			sld.SetMesh(wd.box).SetColor(gridColor)
			sld.SetScale(gridLine, gridLine, floorSize).SetPos(off, 0.01, 0)
		})
	}
}

func (wd *world) makeMachine(p *tree.Plan, me *scene.MachineEntity) {
	tree.AddAt(p, machinePrefix+me.Machine.ID, func(gp *xyz.Group) {
		gp.Pose.Pos = me.Machine.Position
		gp.Maker(func(p *tree.Plan) {
			tree.AddAt(p, "body", func(sld *xyz.Solid) {
				sld.SetMesh(wd.box)
				sld.Updater(func() {
					ap := me.Appearance()
					sld.Pose.Scale = ap.Size.MulScalar(me.State.Scale())
					sld.SetAxisRotation(0, 1, 0, math32.RadToDeg(me.State.Yaw))
					sld.SetColor(ap.BodyColor).SetEmissive(ap.BodyEmissive)
				})
			})
			tree.AddAt(p, "beacon", func(sld *xyz.Solid) {
				sld.SetMesh(wd.beacon)
				sld.Updater(func() {
					ap := me.Appearance()
					sld.Pose.Pos.Set(0, ap.BeaconY, 0)
					sld.SetColor(ap.BeaconColor).SetEmissive(ap.BeaconEmissive)
				})
			})
			tree.AddAt(p, "label", func(tx *xyz.Text2D) {
				tx.Pose.Scale.SetScalar(0.01)
				tx.Updater(func() {
					ap := me.Appearance()
					tx.Pose.Pos.Set(0, ap.LabelY, 0)
					tx.Styles.Color = colors.Uniform(ap.LabelColor)
					text := strings.Join(me.Label(), "<br>")
					if tx.Text != text {
						tx.Text = text
						tx.RenderText()
					}
				})
			})
		})
	})
}

func (wd *world) makeBelt(p *tree.Plan, i int, be *scene.BeltEntity) {
	tr := be.Belt.Transform()
	tree.AddAt(p, "belt-"+strconv.Itoa(i), func(gp *xyz.Group) {
		gp.Pose.Pos = tr.Midpoint
		gp.SetAxisRotation(0, 1, 0, math32.RadToDeg(-tr.Angle))
		gp.Maker(func(p *tree.Plan) {
			tree.AddAt(p, "slab", func(sld *xyz.Solid) {
				sld.SetMesh(wd.box).SetTexture(wd.stripes)
				sld.SetScale(tr.Length, 0.1, be.Belt.Width).SetPos(0, -0.1, 0)
				sld.Material.Tiling.Repeat.Set(math32.Max(1, tr.Length), 1)
				sld.Updater(func() {
					sld.SetColor(factory.BeltColor(be.Belt.Active))
					sld.Material.Tiling.Offset.X = be.Offset()
				})
			})
			for j, off := range factory.BeltSupportOffsets(tr.Length) {
				tree.AddAt(p, "support-"+strconv.Itoa(j), func(sld *xyz.Solid) {
					sld.SetMesh(wd.post).SetColor(factory.SupportColor)
					sld.SetPos(off, -0.3, 0)
				})
			}
		})
	})
}

// entityAt returns the machine whose body is under the given point,
// in scene coordinates, or nil.
func (wd *world) entityAt(pos image.Point) *scene.MachineEntity {
	for _, n := range xyz.NodesUnderPoint(wd.sc, pos) {
		nb := n.AsTree()
		if nb.Name != "body" || nb.Parent == nil {
			continue
		}
		id, ok := strings.CutPrefix(nb.Parent.AsTree().Name, machinePrefix)
		if !ok {
			continue
		}
		if me := wd.comp.Entity(id); me != nil {
			return me
		}
	}
	return nil
}

// hover moves the hover state to the machine under pos, and reports
// whether anything changed.
func (wd *world) hover(pos image.Point) bool {
	return wd.hoverEntity(wd.entityAt(pos))
}

// hoverEntity moves the hover state to me, which may be nil. The
// previous entity is cleared before me is set.
func (wd *world) hoverEntity(me *scene.MachineEntity) bool {
	if me == wd.hovered {
		return false
	}
	wd.leave()
	if me != nil {
		me.PointerOver()
	}
	wd.hovered = me
	return true
}

// leave clears any hover state.
func (wd *world) leave() {
	if wd.hovered != nil {
		wd.hovered.PointerOut()
		wd.hovered = nil
	}
}

// click selects the machine under pos, if any.
func (wd *world) click(pos image.Point) bool {
	me := wd.entityAt(pos)
	if me == nil {
		return false
	}
	me.Click()
	return true
}

// frame advances every entity one frame, keeps the orbit camera
// within its distance limits, and pushes the new state to the nodes.
func (wd *world) frame() {
	wd.comp.Frame()
	cam := &wd.sc.Camera
	cam.Pose.Pos = scene.ClampDistance(cam.Pose.Pos, cam.Target, scene.MinDistance, scene.MaxDistance)
	wd.sc.Update()
}
