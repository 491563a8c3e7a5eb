package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/HuyNLy/Little-Lemon-App/entity"
	"github.com/HuyNLy/Little-Lemon-App/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SearchSocket streams live search results to the menu screen. The client
// sends a frame per keystroke; the server waits for Debounce of quiescence
// before recomputing sections, so only the latest input costs anything.
type SearchSocket struct {
	Service  *services.MenuService
	Debounce time.Duration
}

func NewSearchSocket(service *services.MenuService, debounce time.Duration) *SearchSocket {
	return &SearchSocket{Service: service, Debounce: debounce}
}

type searchRequest struct {
	Query      string   `json:"query"`
	Categories []string `json:"categories"`
}

type searchResult struct {
	State    services.LoadState `json:"state"`
	Sections []entity.Section   `json:"sections"`
	Error    string             `json:"error,omitempty"`
}

// GET /ws/search
func (s *SearchSocket) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade:", err)
		return
	}
	defer conn.Close()

	reqs := make(chan searchRequest, 1)
	done := make(chan struct{})
	go s.resultLoop(conn, reqs, done)
	defer close(done)

	for {
		var req searchRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		// Latest input wins; a stale pending frame is replaced, not queued.
		select {
		case reqs <- req:
		default:
			select {
			case <-reqs:
			default:
			}
			reqs <- req
		}
	}
}

func (s *SearchSocket) resultLoop(conn *websocket.Conn, reqs <-chan searchRequest, done <-chan struct{}) {
	timer := time.NewTimer(s.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	var pending *searchRequest
	for {
		select {
		case req := <-reqs:
			pending = &req
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.Debounce)

		case <-timer.C:
			if pending == nil {
				continue
			}
			sections, state, err := s.Service.Sections(pending.Query, pending.Categories)
			result := searchResult{State: state, Sections: sections}
			if err != nil {
				result.Error = err.Error()
			}
			if err := conn.WriteJSON(result); err != nil {
				log.Println("ws write:", err)
				return
			}
			pending = nil

		case <-done:
			return
		}
	}
}
