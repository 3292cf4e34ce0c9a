// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sparsecs/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It is stored as a World resource so systems can reach it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend window and adds it to w as a resource.
func NewImguiBackend(w *ecs.World, title string, width, height int) *ecs.Resource[ImguiBackend] {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return ecs.NewResource(w, ImguiBackend{EbitenBackend: backend})
}

// Game implements ebiten.Game. Each ebiten update runs one tick of Systems
// between the ImGui BeginFrame and EndFrame calls.
type Game struct {
	World   *ecs.World
	Systems *ecs.Systems
	Backend *ecs.Resource[ImguiBackend]

	// Draw, when set, renders the game below the ImGui overlay.
	Draw func(screen *ebiten.Image)
}

var _ ebiten.Game = (*gameLoop)(nil)

type gameLoop struct {
	*Game
}

// Run starts the ebiten loop and blocks until the window is closed.
func (g *Game) Run() error {
	return ebiten.RunGame(&gameLoop{g})
}

func (g *gameLoop) Update() error {
	backend := g.Backend.Get()
	backend.BeginFrame()
	g.Systems.Step(g.World, 1.0/float64(ebiten.TPS()))
	backend.EndFrame()
	return nil
}

func (g *gameLoop) Draw(screen *ebiten.Image) {
	if g.Game.Draw != nil {
		g.Game.Draw(screen)
	}
	g.Backend.Get().Draw(screen)
}

func (g *gameLoop) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
