// stripview shows how the faces of a model were ordered into strips. Strip
// meshes are shaded from the head of the chain to its tail; meshes drawn as
// plain triangles are grey. Drag to rotate, scroll to zoom, o toggles
// outlines.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/sandsmark/bostrip"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

var outlineColor = color.RGBA{A: 255}

type Game struct {
	scene        *Scene
	camera       *Camera
	stats        bostrip.ModelStats
	lastX, lastY int
	dragging     bool
	outlines     bool
}

// NewGame shows a centred copy of model; model itself is left as loaded.
func NewGame(model *bostrip.Model) *Game {
	view := model.Copy()
	view.Centre()
	lo, hi := view.Bounds()
	size := float32(hi.Sub(lo).Len())
	if size == 0 {
		size = 1
	}
	return &Game{
		scene:    NewScene(view),
		camera:   NewCamera(size*1.5, screenWidth, screenHeight),
		stats:    model.Stats(),
		outlines: true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		g.camera.AddAngle(float32(y-g.lastY)/200.0, float32(x-g.lastX)/200.0)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(1 - float32(wy)*0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.outlines = !g.outlines
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	tris := g.scene.Project(g.camera.Matrix(), screenWidth, screenHeight)
	fillTriangles(screen, tris)
	if g.outlines {
		for _, t := range tris {
			drawTriangleOutline(screen, t, 1, outlineColor)
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("meshes: %d strip / %d list\nfaces: %d  indices: %d (list: %d)\nFPS: %0.2f",
		g.scene.strips, g.scene.lists, g.stats.Faces, g.stats.Indices, g.stats.ListIndices, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

var firstOnly bool

var rootCmd = &cobra.Command{
	Use:          "stripview [flags] model",
	Short:        "Show the triangle strips of a model",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flag.Set("logtostderr", "true")
		flag.CommandLine.Parse(nil)
		defer glog.Flush()

		opts := bostrip.DefaultOptions()
		opts.FirstMeshOnly = firstOnly
		model, err := bostrip.LoadModel(args[0], opts)
		if err != nil {
			return err
		}
		model.Build(opts)

		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("stripview: " + model.Name)
		return ebiten.RunGame(NewGame(model))
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&firstOnly, "first", "f", false, "show only the first mesh")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
