package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/devcircle/hub/pkg/app/styles"
	"github.com/devcircle/hub/pkg/data"
	"github.com/devcircle/hub/pkg/route"
	"github.com/devcircle/hub/pkg/site"
)

// External links shown in the header next to the brand.
var externalLinks = []struct {
	label string
	url   string
}{
	{"github", "https://github.com/devcircle"},
	{"slack", "https://devcircle.org/slack"},
	{"youtube", "https://youtube.com/@devcircle"},
}

// Messages

// navigateMsg is an in-app navigation request. It switches the page and
// schedules the hash write as a follow-up effect.
type navigateMsg struct {
	page route.Page
}

// hashChangedMsg reports that the route hash changed, either as the echo of
// a navigateMsg or from a deep link. It resolves the page through the codec
// and carries no further effects.
type hashChangedMsg struct {
	hash string
}

type demosLoadedMsg struct {
	demos []data.Demo
	err   error
}

type resourcesLoadedMsg struct {
	resources []data.Resource
	err       error
}

type presentationsLoadedMsg struct {
	presentations []data.Presentation
	err           error
}

// cacheLoadedMsg carries whatever the local cache held at startup. Lists a
// live fetch already replaced are not overwritten by it.
type cacheLoadedMsg struct {
	demos         []data.Demo
	resources     []data.Resource
	presentations []data.Presentation
}

// RootScreen owns the application state and is the single dispatcher: every
// state change goes through Update, one message at a time. Sub-screens are
// pure view composers over the lists it holds.
type RootScreen struct {
	source site.Source
	repo   *data.Repository
	log    *zap.Logger

	page route.Page
	hash string

	demos         []data.Demo
	resources     []data.Resource
	presentations []data.Presentation

	demosFetched         bool
	resourcesFetched     bool
	presentationsFetched bool

	home              *HomeScreen
	demosView         *DemosScreen
	resourcesView     *ResourcesScreen
	presentationsView *PresentationsScreen

	spinner spinner.Model
	width   int
	height  int
}

func NewRootScreen(source site.Source, repo *data.Repository, log *zap.Logger, initialHash string) *RootScreen {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &RootScreen{
		source:            source,
		repo:              repo,
		log:               log,
		page:              route.HashToPage(initialHash),
		hash:              initialHash,
		home:              NewHomeScreen(),
		demosView:         NewDemosScreen(),
		resourcesView:     NewResourcesScreen(),
		presentationsView: NewPresentationsScreen(),
		spinner:           sp,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{
		r.spinner.Tick,
		r.fetchDemos,
		r.fetchResources,
		r.fetchPresentations,
	}
	if r.repo != nil {
		cmds = append(cmds, r.loadCache)
	}
	return tea.Batch(cmds...)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case "tab":
			next := route.Pages[(r.navIndex()+1)%len(route.Pages)]
			return r, r.navigate(next)
		case "1":
			return r, r.navigate(route.Home)
		case "2":
			return r, r.navigate(route.Demos)
		case "3":
			return r, r.navigate(route.Resources)
		case "4":
			return r, r.navigate(route.Presentations)
		}

	case navigateMsg:
		return r, r.navigate(msg.page)

	case hashChangedMsg:
		r.hash = msg.hash
		r.page = route.HashToPage(msg.hash)

	case demosLoadedMsg:
		if msg.err != nil {
			// Fetch failures are swallowed: prior state stays as-is.
			return r, nil
		}
		r.demosFetched = true
		r.setDemos(msg.demos)
		return r, r.cacheDemos(msg.demos)

	case resourcesLoadedMsg:
		if msg.err != nil {
			return r, nil
		}
		r.resourcesFetched = true
		r.setResources(msg.resources)
		return r, r.cacheResources(msg.resources)

	case presentationsLoadedMsg:
		if msg.err != nil {
			return r, nil
		}
		r.presentationsFetched = true
		r.setPresentations(msg.presentations)
		return r, r.cachePresentations(msg.presentations)

	case cacheLoadedMsg:
		if !r.demosFetched && len(msg.demos) > 0 {
			r.setDemos(msg.demos)
		}
		if !r.resourcesFetched && len(msg.resources) > 0 {
			r.setResources(msg.resources)
		}
		if !r.presentationsFetched && len(msg.presentations) > 0 {
			r.setPresentations(msg.presentations)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	return r, nil
}

// navigate applies the Navigate transition: the page switches immediately and
// the hash write comes back as a hashChangedMsg, the way a browser delivers
// hashchange after the location is set. The second page set is idempotent.
func (r *RootScreen) navigate(page route.Page) tea.Cmd {
	r.page = page
	return func() tea.Msg {
		return hashChangedMsg{hash: route.PageToHash(page)}
	}
}

func (r *RootScreen) navIndex() int {
	for i, p := range route.Pages {
		if p == r.page {
			return i
		}
	}
	return 0
}

func (r *RootScreen) setDemos(demos []data.Demo) {
	r.demos = demos
	r.demosView.SetItems(demos)
}

func (r *RootScreen) setResources(resources []data.Resource) {
	r.resources = resources
	r.resourcesView.SetItems(resources)
}

func (r *RootScreen) setPresentations(presentations []data.Presentation) {
	r.presentations = presentations
	r.presentationsView.SetItems(presentations)
}

// Commands

func (r *RootScreen) fetchDemos() tea.Msg {
	demos, err := r.source.Demos(context.Background())
	return demosLoadedMsg{demos: demos, err: err}
}

func (r *RootScreen) fetchResources() tea.Msg {
	resources, err := r.source.Resources(context.Background())
	return resourcesLoadedMsg{resources: resources, err: err}
}

func (r *RootScreen) fetchPresentations() tea.Msg {
	presentations, err := r.source.Presentations(context.Background())
	return presentationsLoadedMsg{presentations: presentations, err: err}
}

func (r *RootScreen) loadCache() tea.Msg {
	var msg cacheLoadedMsg
	msg.demos, _ = r.repo.ListDemos()
	msg.resources, _ = r.repo.ListResources()
	msg.presentations, _ = r.repo.ListPresentations()
	return msg
}

func (r *RootScreen) cacheDemos(demos []data.Demo) tea.Cmd {
	if r.repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := r.repo.ReplaceDemos(demos); err != nil {
			r.log.Warn("cache write failed", zap.Error(err))
		}
		return nil
	}
}

func (r *RootScreen) cacheResources(resources []data.Resource) tea.Cmd {
	if r.repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := r.repo.ReplaceResources(resources); err != nil {
			r.log.Warn("cache write failed", zap.Error(err))
		}
		return nil
	}
}

func (r *RootScreen) cachePresentations(presentations []data.Presentation) tea.Cmd {
	if r.repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := r.repo.ReplacePresentations(presentations); err != nil {
			r.log.Warn("cache write failed", zap.Error(err))
		}
		return nil
	}
}

// View

func (r *RootScreen) View() string {
	header := r.renderHeader()
	body := r.renderBody()
	help := styles.HelpStyle.Render("1-4: pages • tab: next page • q: quit")
	return fmt.Sprintf("%s\n\n%s\n%s", header, body, help)
}

func (r *RootScreen) renderBody() string {
	switch r.page {
	case route.Demos:
		if len(r.demos) == 0 && !r.demosFetched {
			return r.loadingView()
		}
		return r.demosView.View()
	case route.Resources:
		if len(r.resources) == 0 && !r.resourcesFetched {
			return r.loadingView()
		}
		return r.resourcesView.View()
	case route.Presentations:
		if len(r.presentations) == 0 && !r.presentationsFetched {
			return r.loadingView()
		}
		return r.presentationsView.View()
	case route.NotFound:
		return notFoundView(r.hash)
	}
	return r.home.View()
}

func (r *RootScreen) loadingView() string {
	return fmt.Sprintf("%s %s", r.spinner.View(), styles.MutedStyle.Render("loading..."))
}

func (r *RootScreen) renderHeader() string {
	brand := styles.BrandStyle.Render("devcircle")

	var external string
	for _, link := range externalLinks {
		external += " " + styles.MutedStyle.Render(fmt.Sprintf("[%s %s]", link.label, link.url))
	}

	var nav []string
	for _, p := range route.Pages {
		if p == route.Home {
			continue
		}
		if p == r.page {
			nav = append(nav, styles.ActiveNavStyle.Render(p.Title()))
		} else {
			nav = append(nav, styles.InactiveNavStyle.Render(p.Title()))
		}
	}

	top := brand + external
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, nav...)
	hashLine := styles.MutedStyle.Render(r.hash)
	return fmt.Sprintf("%s\n%s  %s", top, tabs, hashLine)
}
