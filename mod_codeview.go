package gallery

import (
	"slices"

	"github.com/gekko3d/gallery/codeview"
	"github.com/gekko3d/gallery/core"
)

// CodePane holds the highlighted source of the current shader while the code
// panel is open. Text is "" while it is closed.
type CodePane struct {
	Visible    bool
	ShaderName string
	Text       string

	highlighter *codeview.Highlighter
	rendered    core.CodeView
}

// CodeViewModule renders the code pane with the named chroma style and
// formatter. Install it after GalleryModule. An unknown style is logged and
// replaced by chroma's fallback.
type CodeViewModule struct {
	Style  string
	Format string
}

func (m CodeViewModule) Install(app *App, cmd *Commands) {
	if Resource[core.Selection](app) == nil {
		panic("CodeViewModule: GalleryModule must be installed first")
	}
	if m.Style != "" && !slices.Contains(codeview.Styles(), m.Style) {
		cmd.Logger().Warnf("code view style %q is not registered, using the fallback", m.Style)
	}
	cmd.AddResources(&CodePane{highlighter: codeview.New(m.Style, m.Format)})
	cmd.UseSystem(System(codeViewSystem).InStage(PostUpdate))
}

func codeViewSystem(sel *core.Selection, pane *CodePane, cmd *Commands) {
	cv := sel.CodeView()
	if cv == pane.rendered {
		return
	}
	pane.rendered = cv
	pane.Visible = cv.Visible
	pane.ShaderName = cv.ShaderName

	text, err := pane.highlighter.Render(cv)
	if err != nil {
		cmd.Logger().Warnf("code view %q: %v", cv.ShaderName, err)
		text = cv.VertexSource + "\n" + cv.FragmentSource
	}
	pane.Text = text
}
