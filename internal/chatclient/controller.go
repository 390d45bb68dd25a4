package chatclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"nutrition-coach/internal/domain"
)

// Textos fijos del cliente.
const (
	Greeting = "Hi! I'm your Smart Nutrition Coach. I can help you with healthy meal suggestions, food replacements, and snack recommendations based on your time of day and activities. What would you like to know?"
	Apology  = "Sorry, I encountered an error. Please try again."
)

// Suggestions son los atajos que se ofrecen con la conversacion vacia.
var Suggestions = []string{
	"What’s a healthy dinner option?",
	"Suggest a replacement for soda",
	"What snack should I eat after my workout?",
}

var (
	ErrEmptyInput         = errors.New("empty input")
	ErrSubmitInFlight     = errors.New("submission already in flight")
	ErrSuggestionDisabled = errors.New("suggestions not available")
	ErrUnknownSuggestion  = errors.New("unknown suggestion")
)

// State es el estado de la conversacion.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// View es una foto inmutable de lo que hay que renderizar.
type View struct {
	Messages domain.Conversation
	Input    string
	State    State
	// Thinking indica que hay que mostrar el indicador transitorio en lugar de un mensaje real.
	Thinking bool
	// Suggestions solo tiene contenido con la conversacion vacia y sin request en vuelo.
	Suggestions []string
}

// Renderer recibe la vista despues de cada cambio (render + auto-scroll al ultimo mensaje).
type Renderer func(View)

// Controller mantiene la conversacion, la persiste en cada cambio y maneja el endpoint proxy.
// Admite a lo sumo un request en vuelo.
type Controller struct {
	store  Store
	api    ChatAPI
	logger *zap.Logger
	render Renderer

	mu       sync.Mutex
	messages domain.Conversation
	input    string
	state    State
}

// Option configura el Controller.
type Option func(*Controller)

// WithRenderer registra el callback de render.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.render = r }
}

// WithLogger define el logger del controller.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewController(store Store, api ChatAPI, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		api:    api,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize carga la conversacion persistida. Si no existe, o si el valor guardado no tiene la
// forma esperada, arranca con el saludo del asistente.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	raw, ok, err := c.store.Get(ctx, domain.ConversationKey)
	if err != nil {
		c.messages = domain.Conversation{domain.AssistantMessage(Greeting)}
		view := c.viewLocked()
		c.mu.Unlock()
		c.notify(view)
		return fmt.Errorf("load conversation: %w", err)
	}

	conv := domain.Conversation{domain.AssistantMessage(Greeting)}
	if ok {
		loaded, decodeErr := domain.DecodeConversation(raw)
		if decodeErr != nil {
			c.logger.Warn("discarding stored conversation", zap.Error(decodeErr))
		} else {
			conv = loaded
		}
	}
	c.messages = conv
	c.state = StateIdle
	persistErr := c.persistLocked(ctx)
	view := c.viewLocked()
	c.mu.Unlock()

	c.notify(view)
	return persistErr
}

// SetInput actualiza el campo de texto. Se ignora mientras hay un request en vuelo.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return
	}
	c.input = text
	view := c.viewLocked()
	c.mu.Unlock()
	c.notify(view)
}

// SelectSuggestion copia la sugerencia i en el input sin enviarla.
func (c *Controller) SelectSuggestion(i int) error {
	c.mu.Lock()
	if len(c.messages) != 0 || c.state != StateIdle {
		c.mu.Unlock()
		return ErrSuggestionDisabled
	}
	if i < 0 || i >= len(Suggestions) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownSuggestion, i)
	}
	c.input = Suggestions[i]
	view := c.viewLocked()
	c.mu.Unlock()
	c.notify(view)
	return nil
}

// SubmitInput envia el contenido actual del input.
func (c *Controller) SubmitInput(ctx context.Context) error {
	c.mu.Lock()
	text := c.input
	c.mu.Unlock()
	return c.Submit(ctx, text)
}

// Submit agrega el turno del usuario, llama al endpoint y agrega exactamente un turno del asistente:
// la respuesta o la disculpa fija si el request falla. Con texto vacio o un envio en curso no hace nada.
func (c *Controller) Submit(ctx context.Context, text string) error {
	c.mu.Lock()
	if strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		return ErrEmptyInput
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.messages = append(c.messages, domain.UserMessage(text))
	c.input = ""
	c.state = StateSubmitting
	c.persistLogged(ctx)
	view := c.viewLocked()
	c.mu.Unlock()
	c.notify(view)

	reply, err := c.api.Send(ctx, text)
	if err != nil {
		c.logger.Warn("chat request failed", zap.Error(err))
		reply = Apology
	}

	c.mu.Lock()
	c.messages = append(c.messages, domain.AssistantMessage(reply))
	c.state = StateIdle
	c.persistLogged(ctx)
	view = c.viewLocked()
	c.mu.Unlock()
	c.notify(view)
	return nil
}

// Clear vacia la conversacion (sin volver a sembrar el saludo) y persiste el resultado.
func (c *Controller) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.messages = domain.Conversation{}
	err := c.persistLocked(ctx)
	view := c.viewLocked()
	c.mu.Unlock()
	c.notify(view)
	return err
}

// View devuelve la foto actual.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	v := View{
		Messages: c.messages.Clone(),
		Input:    c.input,
		State:    c.state,
		Thinking: c.state == StateSubmitting,
	}
	if len(c.messages) == 0 && c.state == StateIdle {
		v.Suggestions = append([]string(nil), Suggestions...)
	}
	return v
}

// persistLocked escribe la conversacion completa; no cancela la escritura si ctx ya fue cancelado.
func (c *Controller) persistLocked(ctx context.Context) error {
	raw, err := domain.EncodeConversation(c.messages)
	if err != nil {
		return fmt.Errorf("encode conversation: %w", err)
	}
	if err := c.store.Set(context.WithoutCancel(ctx), domain.ConversationKey, raw); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

func (c *Controller) persistLogged(ctx context.Context) {
	if err := c.persistLocked(ctx); err != nil {
		c.logger.Warn("persist conversation failed", zap.Error(err))
	}
}

func (c *Controller) notify(v View) {
	if c.render != nil {
		c.render(v)
	}
}
