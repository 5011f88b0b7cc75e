package debugmap

import (
	"bytes"
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

func TestRenderProducesWellFormedSVG(t *testing.T) {
	lvl := &model.Level{}
	lvl.Monsters = []*model.Creature{
		{ID: 1, CurrentHP: 10, Loc: grid.Pos{X: 3, Y: 3}},
	}

	out := Render(lvl, DefaultOptions())

	if !bytes.Contains(out, []byte("<svg")) {
		t.Fatal("expected an <svg> root element")
	}
	if !bytes.Contains(out, []byte("</svg>")) {
		t.Fatal("expected a closing </svg> tag")
	}
}

func TestRenderWithOverlay(t *testing.T) {
	lvl := &model.Level{}
	overlay := grid.NewGrid(grid.PDSMaxDistance)
	overlay.Set(grid.Pos{X: 1, Y: 1}, 0)

	opts := DefaultOptions()
	opts.Overlay = overlay

	out := Render(lvl, opts)
	if len(out) == 0 {
		t.Fatal("expected non-empty SVG output")
	}
}

func TestDefaultOptionsAppliedWhenCellSizeZero(t *testing.T) {
	lvl := &model.Level{}
	out := Render(lvl, Options{})
	if !bytes.Contains(out, []byte("<svg")) {
		t.Fatal("expected rendering to succeed with zero-value Options")
	}
}
