package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/generator"
	log "github.com/cloudposse/fngen/pkg/logger"
	"github.com/cloudposse/fngen/pkg/ui/markdown"
	"github.com/cloudposse/fngen/pkg/ui/spinner"
	"github.com/cloudposse/fngen/pkg/ui/theme"
)

const (
	wideRule   = 60
	narrowRule = 50
	debugRule  = 30

	// debugPreviewLength is how much of each message the conversation dump shows.
	debugPreviewLength = 100
)

var (
	stepIcons = map[generator.Stage]string{
		generator.StageImplement: "🔧",
		generator.StageDocument:  "📚",
		generator.StageTest:      "🧪",
	}
	stepDone = map[generator.Stage]string{
		generator.StageImplement: "Generated Basic Function",
		generator.StageDocument:  "Added Documentation",
		generator.StageTest:      "Added Test Cases",
	}
)

// ReporterOptions configures a Reporter.
type ReporterOptions struct {
	// Verbose prints every raw model response and the final conversation.
	Verbose bool
	// Color enables lipgloss styles and syntax highlighting.
	Color bool
	// TTY enables the spinner while a request is in flight.
	TTY bool
	// Language is the chroma lexer name for extracted code.
	Language string
	// Model is shown next to the spinner.
	Model string
}

// Reporter prints generation progress to a console. It implements generator.Observer.
type Reporter struct {
	out      io.Writer
	opts     ReporterOptions
	styles   *theme.StyleSet
	markdown *markdown.Renderer
	spinner  *spinner.Spinner
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, opts ReporterOptions) *Reporter {
	r := &Reporter{
		out:    out,
		opts:   opts,
		styles: theme.NewStyles(opts.Color),
	}

	if opts.Verbose && opts.Color {
		renderer, err := markdown.NewRenderer()
		if err != nil {
			log.Debug("Markdown rendering disabled", "error", err)
		} else {
			r.markdown = renderer
		}
	}
	return r
}

var _ generator.Observer = (*Reporter)(nil)

// Intro prints the tool banner.
func (r *Reporter) Intro() {
	r.println(r.styles.Title.Render("🤖 Function Generator"))
	r.rule(narrowRule)
	r.println("This tool creates a complete function with:")
	r.println("  • Basic functionality")
	r.println("  • Comprehensive documentation")
	r.println("  • Unit tests")
	r.println("  • Auto-saved to file")
	r.rule(narrowRule)
}

// Start announces the run.
func (r *Reporter) Start(description string) {
	r.println("")
	r.rule(wideRule)
	r.println(r.styles.Title.Render("🚀 STARTING GENERATION PROCESS"))
	r.rule(wideRule)
	r.println(fmt.Sprintf("🚀 Creating function: %s", description))
	r.rule(wideRule)
}

func (r *Reporter) StepStarted(info generator.StepInfo) {
	r.println("")
	r.println(r.styles.Step.Render(fmt.Sprintf("%s STEP %d: %s", stepIcons[info.Stage], info.Stage.Number(), info.Title)))
	r.println(r.styles.Goal.Render("Goal: " + info.Goal))

	waiting := "Waiting for the model"
	if r.opts.Model != "" {
		waiting = fmt.Sprintf("Waiting for %s", r.opts.Model)
	}
	r.spinner = spinner.New(waiting, r.out, r.opts.TTY)
	r.spinner.Start()
}

func (r *Reporter) ResponseReceived(_ generator.Stage, response string) {
	r.stopSpinner()
	if !r.opts.Verbose {
		return
	}

	r.println(r.styles.Muted.Render("Full LLM Response:"))
	r.println(r.renderMarkdown(response))
	r.println("")
}

func (r *Reporter) StepCompleted(stage generator.Stage, code string) {
	r.println(r.styles.Success.Render(fmt.Sprintf("✅ %s:", stepDone[stage])))
	r.println(r.renderCode(code))
	r.println("")
}

// Finished prints the conversation dump in verbose mode.
func (r *Reporter) Finished(_ *generator.Result, history []types.Message) {
	if !r.opts.Verbose {
		return
	}

	r.println("")
	r.println(r.styles.Title.Render("🔍 DEBUG: Final Conversation"))
	r.rule(debugRule)
	for i, msg := range history {
		r.println(fmt.Sprintf("%d. %s: %s...", i+1, msg.Role, preview(msg.Content, debugPreviewLength)))
	}
	r.println("")
}

// Abort stops any running spinner after a failed request.
func (r *Reporter) Abort() {
	r.stopSpinner()
}

// Saving announces the save step.
func (r *Reporter) Saving() {
	r.println(r.styles.Title.Render("💾 SAVING RESULTS"))
}

// Saved reports the written file.
func (r *Reporter) Saved(path string) {
	r.println(r.styles.Success.Render(fmt.Sprintf("✅ Saved complete function to: %s", path)))
}

// SaveFailed reports a failed save. The run is still complete.
func (r *Reporter) SaveFailed(err error) {
	r.println(r.styles.Warning.Render(fmt.Sprintf("Warning: Could not save to file - %v", err)))
}

// Success prints the closing summary.
func (r *Reporter) Success(saved bool) {
	r.println("")
	r.rule(wideRule)
	r.println(r.styles.Success.Render("🎉 SUCCESS! Function generation complete!"))
	r.rule(wideRule)
	r.println("You now have:")
	r.println("  ✅ A working function")
	r.println("  ✅ Complete documentation")
	r.println("  ✅ Comprehensive tests")
	if saved {
		r.println("  ✅ Saved to file")
	}
}

func (r *Reporter) stopSpinner() {
	if r.spinner != nil {
		r.spinner.Stop("", true)
		r.spinner = nil
	}
}

func (r *Reporter) renderCode(code string) string {
	if !r.opts.Color {
		return code
	}
	return strings.TrimRight(Highlight(code, r.opts.Language), "\n")
}

func (r *Reporter) renderMarkdown(content string) string {
	if r.markdown == nil {
		return content
	}
	rendered, err := r.markdown.Render(content)
	if err != nil {
		log.Debug("Failed to render response as markdown", "error", err)
		return content
	}
	return rendered
}

func (r *Reporter) rule(width int) {
	r.println(r.styles.Rule.Render(strings.Repeat("=", width)))
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

// preview returns at most n runes of s.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
