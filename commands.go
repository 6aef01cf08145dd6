package gallery

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

// Submit queues user intents for the next PreUpdate. It panics when the
// gallery module is not installed.
func (cmd *Commands) Submit(intents ...Intent) *Commands {
	q := Resource[IntentQueue](cmd.app)
	if q == nil {
		panic("Submit: GalleryModule is not installed")
	}
	q.Push(intents...)
	return cmd
}

// Exit stops App.Run after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exit()
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
