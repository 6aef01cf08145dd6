package gallery

import (
	"fmt"

	"github.com/gekko3d/gallery/core"
	"github.com/gekko3d/gallery/manifest"
	"github.com/gekko3d/gallery/shaders"
	"github.com/gekko3d/gallery/shapes"
)

// GalleryModule owns the selection. It builds the catalogs, bootstraps the
// default shader and schedules the intent and animation systems.
//
// Catalog sources, in order: explicit Shaders/Shapes, then ManifestPath,
// then the built-ins. Install LightingModule first to light the materials;
// without it they get core.DefaultLighting.
type GalleryModule struct {
	DefaultShader string
	Shaders       []*core.ShaderDefinition
	Shapes        []*core.ShapeDefinition
	ManifestPath  string
}

func (m GalleryModule) Install(app *App, cmd *Commands) {
	log := app.Logger()

	shaderCat, shapeCat, defaultShader, err := m.catalogs()
	if err != nil {
		log.Errorf("gallery catalogs: %v", err)
		panic(fmt.Sprintf("GalleryModule: %v", err))
	}

	var lighting core.LightingSource
	if l := Resource[Lighting](app); l != nil {
		lighting = l
	}

	sel := core.NewSelection(shaderCat, shapeCat, core.NewBinder(lighting))
	sel.SetReporter(appReporter{app: app})
	if err := sel.Bootstrap(defaultShader); err != nil {
		log.Errorf("gallery bootstrap: %v", err)
		panic(err)
	}
	log.Infof("gallery ready: %d shaders, %d shapes, shader %q", shaderCat.Len(), shapeCat.Len(), defaultShader)

	if Resource[Time](app) == nil {
		TimeModule{}.Install(app, cmd)
	}
	cmd.AddResources(sel, &IntentQueue{})
	cmd.UseSystem(System(intentSystem).InStage(PreUpdate))
	cmd.UseSystem(System(animationSystem).InStage(Update))
}

func (m GalleryModule) catalogs() (*core.ShaderCatalog, *core.ShapeCatalog, string, error) {
	var (
		shaderCat *core.ShaderCatalog
		shapeCat  *core.ShapeCatalog
		err       error
	)
	defaultShader := m.DefaultShader

	if m.ManifestPath != "" {
		mf, err := manifest.Load(m.ManifestPath)
		if err != nil {
			return nil, nil, "", err
		}
		if shaderCat, shapeCat, err = mf.Catalogs(); err != nil {
			return nil, nil, "", fmt.Errorf("manifest %s: %w", m.ManifestPath, err)
		}
		if defaultShader == "" {
			defaultShader = mf.DefaultShader
		}
	}

	if m.Shaders != nil {
		if shaderCat, err = core.NewShaderCatalog(m.Shaders...); err != nil {
			return nil, nil, "", err
		}
	}
	if shaderCat == nil {
		if shaderCat, err = shaders.Catalog(); err != nil {
			return nil, nil, "", err
		}
	}

	if m.Shapes != nil {
		if shapeCat, err = core.NewShapeCatalog(m.Shapes...); err != nil {
			return nil, nil, "", err
		}
	}
	if shapeCat == nil {
		if shapeCat, err = shapes.Catalog(); err != nil {
			return nil, nil, "", err
		}
	}

	if defaultShader == "" {
		defaultShader = core.DefaultShaderName
	}
	return shaderCat, shapeCat, defaultShader, nil
}

// intentSystem applies queued intents in submission order. Failures were
// already reported by the selection; the next intent still runs.
func intentSystem(sel *core.Selection, queue *IntentQueue, cmd *Commands) {
	for _, intent := range queue.Drain() {
		if err := intent.Apply(sel); err != nil {
			cmd.Logger().Debugf("intent %v: %v", intent, err)
		}
	}
}

func animationSystem(sel *core.Selection, t *Time) {
	// OnFrame reports failures itself and keeps the previous values.
	_ = sel.OnFrame(t)
}
