package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/louisbranch/tabletop/internal/blades"
	"github.com/louisbranch/tabletop/internal/dice"
	"github.com/louisbranch/tabletop/internal/fate"
	"github.com/louisbranch/tabletop/internal/namegen"
	"github.com/louisbranch/tabletop/internal/sheet"
)

// maxBodySize bounds request bodies; sheet documents are small JSON.
const maxBodySize = 1 << 20

func (s *Server) decode(w http.ResponseWriter, r *http.Request, target any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

type bladesRollRequest struct {
	Pool     int    `json:"pool"`
	Position string `json:"position"`
	Seed     int64  `json:"seed,omitempty"`
}

type bladesRollResponse struct {
	Values     []int              `json:"values"`
	WorstOfTwo bool               `json:"worstOfTwo"`
	Selected   int                `json:"selected"`
	Outcome    string             `json:"outcome"`
	Effect     blades.Effect      `json:"effect"`
	Position   blades.Position    `json:"position"`
	Used       []blades.BonusKind `json:"used"`
}

func bladesResponse(roll *blades.ActionRoll, position blades.Position) bladesRollResponse {
	result := roll.Result()
	return bladesRollResponse{
		Values:     result.Values,
		WorstOfTwo: result.WorstOfTwo,
		Selected:   result.Selected,
		Outcome:    result.Outcome.String(),
		Effect:     blades.EffectFor(result.Outcome, position),
		Position:   position,
		Used:       roll.Used(),
	}
}

func (s *Server) handleBladesRoll(w http.ResponseWriter, r *http.Request) {
	var req bladesRollRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	position, err := blades.ParsePosition(req.Position)
	if err != nil {
		s.writeError(w, err)
		return
	}

	roller := dice.NewRoller(rollSeed(req.Seed))
	roll, err := blades.NewActionRoll(roller, req.Pool)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, bladesResponse(roll, position))
}

type bladesBonusRequest struct {
	Values     []int    `json:"values"`
	WorstOfTwo bool     `json:"worstOfTwo"`
	Used       []string `json:"used"`
	Bonus      string   `json:"bonus"`
	Position   string   `json:"position"`
	Seed       int64    `json:"seed,omitempty"`
}

func (s *Server) handleBladesBonus(w http.ResponseWriter, r *http.Request) {
	var req bladesBonusRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	position, err := blades.ParsePosition(req.Position)
	if err != nil {
		s.writeError(w, err)
		return
	}

	bonus, err := blades.ParseBonusKind(req.Bonus)
	if err != nil {
		s.writeError(w, err)
		return
	}

	used := make([]blades.BonusKind, 0, len(req.Used))
	for _, kind := range req.Used {
		parsed, err := blades.ParseBonusKind(kind)
		if err != nil {
			s.writeError(w, err)
			return
		}
		used = append(used, parsed)
	}

	roll, err := blades.ResumeActionRoll(req.Values, req.WorstOfTwo, used)
	if err != nil {
		s.writeError(w, err)
		return
	}

	roller := dice.NewRoller(rollSeed(req.Seed))
	if _, err := roll.AddBonus(roller, bonus); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, bladesResponse(roll, position))
}

type fateRollRequest struct {
	Rating  int   `json:"rating"`
	Invokes int   `json:"invokes"`
	Seed    int64 `json:"seed,omitempty"`
}

type fateRollResponse struct {
	Dice    []int  `json:"dice"`
	Rating  int    `json:"rating"`
	Invokes int    `json:"invokes"`
	Total   int    `json:"total"`
	Ladder  string `json:"ladder"`
}

func (s *Server) handleFateRoll(w http.ResponseWriter, r *http.Request) {
	var req fateRollRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	roller := dice.NewRoller(rollSeed(req.Seed))
	values, err := roller.RollFudgePool(dice.FudgePoolSize)
	if err != nil {
		s.writeError(w, err)
		return
	}

	total := fate.RollTotal(values, req.Rating, req.Invokes)
	s.writeJSON(w, http.StatusOK, fateRollResponse{
		Dice:    values,
		Rating:  req.Rating,
		Invokes: req.Invokes,
		Total:   total,
		Ladder:  fate.LadderName(total),
	})
}

func (s *Server) handleSheetList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context(), r.PathValue("system"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *Server) handleSheetGet(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), r.PathValue("system"), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		s.log.Errorw("write sheet", "error", err)
	}
}

func (s *Server) handleSheetPut(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, fmt.Errorf("read request: %w", err))
		return
	}

	if _, err := sheet.ParseImport(doc); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Put(r.Context(), r.PathValue("system"), r.PathValue("id"), doc); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSheetAutosave queues a debounced save instead of writing through.
// Edits within the debounce window coalesce; a direct PUT bypasses the
// delay.
func (s *Server) handleSheetAutosave(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, fmt.Errorf("read request: %w", err))
		return
	}

	if _, err := sheet.ParseImport(doc); err != nil {
		s.writeError(w, err)
		return
	}

	s.session.Autosaver.Queue(r.PathValue("system"), r.PathValue("id"), doc)
	s.writeJSON(w, http.StatusAccepted, map[string]bool{
		"queued":       true,
		"quotaWarning": s.session.Autosaver.QuotaWarning(),
	})
}

func (s *Server) handleSheetDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), r.PathValue("system"), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleConvert converts a sheet document between the single and group
// FATE shapes. The direction comes from the "to" query parameter.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, fmt.Errorf("read request: %w", err))
		return
	}

	switch to := r.URL.Query().Get("to"); to {
	case "group":
		character, err := fate.DeserializeCharacter(doc)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, fate.ConvertSingleToGroup(character))
	case "single":
		var group fate.GroupCharacter
		if err := json.Unmarshal(doc, &group); err != nil {
			s.writeError(w, fmt.Errorf("decode group character: %w", err))
			return
		}
		s.writeJSON(w, http.StatusOK, fate.ConvertGroupToSingle(group))
	default:
		s.writeError(w, fmt.Errorf("unknown conversion target %q", to))
	}
}

func (s *Server) handleNames(w http.ResponseWriter, r *http.Request) {
	if s.names == nil {
		http.NotFound(w, r)
		return
	}

	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, fmt.Errorf("parse count: %w", err))
			return
		}
		count = parsed
	}

	names, err := s.names.Random(r.Context(), namegen.Query{
		Kind:   r.URL.Query().Get("kind"),
		Origin: r.URL.Query().Get("origin"),
		Count:  count,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"names": names})
}

func (s *Server) handleTransferPut(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, fmt.Errorf("read request: %w", err))
		return
	}

	if err := s.session.Transfers.Put(r.Context(), r.PathValue("slot"), doc); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTransferTake consumes a staged handoff document. An empty or
// already-consumed slot responds 204 so back-navigation is a no-op rather
// than an error.
func (s *Server) handleTransferTake(w http.ResponseWriter, r *http.Request) {
	doc, ok, err := s.session.Transfers.Take(r.Context(), r.PathValue("slot"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		s.log.Errorw("write transfer", "error", err)
	}
}
