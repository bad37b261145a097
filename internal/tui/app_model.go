package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/models"
)

// screen enumerates the pages of the terminal client.
type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenHome
	screenLeaderboard
	screenMessages
	screenConversation
	screenCompose
	screenProfile
	screenProfileEdit
)

// appModel is the root Bubble Tea model. It owns the in-memory session,
// routes key presses to the active screen and reacts to the result
// messages produced by async commands.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	screen  screen
	session models.Session

	width  int
	height int

	welcome      welcomeState
	login        loginState
	register     registerState
	home         homeState
	leaderboard  leaderboardState
	messages     messagesState
	conversation conversationState
	compose      composeState
	profile      profileState
	profileEdit  profileEditState
}

func newAppModel(ctx context.Context, services *service.ClientServices, log *logger.Logger) appModel {
	return appModel{
		ctx:      ctx,
		services: services,
		logger:   log,
		screen:   screenWelcome,
		welcome:  newWelcomeState(),
		login:    newLoginState(),
		register: newRegisterState(),
		home:     newHomeState(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.logout) && m.session.LoggedIn() {
			return m.logout()
		}

	case loginDoneMsg:
		return m.onLoginDone(msg)
	case registerDoneMsg:
		return m.onRegisterDone(msg)
	case profileLoadedMsg:
		return m.onProfileLoaded(msg)
	case profileSavedMsg:
		return m.onProfileSaved(msg)
	case leaderboardLoadedMsg:
		return m.onLeaderboardLoaded(msg)
	case conversationsLoadedMsg:
		return m.onConversationsLoaded(msg)
	case conversationLoadedMsg:
		return m.onConversationLoaded(msg)
	case messageSentMsg:
		return m.onMessageSent(msg)
	case copiedMsg:
		return m.onCopied(msg)
	case clearStatusMsg:
		m.profile.status = ""
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenLeaderboard:
		return m.updateLeaderboard(msg)
	case screenMessages:
		return m.updateMessages(msg)
	case screenConversation:
		return m.updateConversation(msg)
	case screenCompose:
		return m.updateCompose(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenProfileEdit:
		return m.updateProfileEdit(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	switch m.screen {
	case screenWelcome:
		return m.viewWelcome()
	case screenLogin:
		return m.viewLogin()
	case screenRegister:
		return m.viewRegister()
	case screenHome:
		return m.viewHome()
	case screenLeaderboard:
		return m.viewLeaderboard()
	case screenMessages:
		return m.viewMessages()
	case screenConversation:
		return m.viewConversation()
	case screenCompose:
		return m.viewCompose()
	case screenProfile:
		return m.viewProfile()
	case screenProfileEdit:
		return m.viewProfileEdit()
	}
	return ""
}

// logout drops the session and all screen state that belongs to it.
func (m appModel) logout() (tea.Model, tea.Cmd) {
	m.services.AuthService.Logout()
	m.session = models.Session{}
	m.login = newLoginState()
	m.register = newRegisterState()
	m.home = newHomeState()
	m.leaderboard = leaderboardState{}
	m.messages = messagesState{}
	m.conversation = conversationState{}
	m.compose = composeState{}
	m.profile = profileState{}
	m.profileEdit = profileEditState{}
	m.screen = screenWelcome
	return m, nil
}
