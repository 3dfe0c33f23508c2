package services

import (
	"errors"
	"strings"

	"github.com/Om-Rawte/AIMenuAssistant/configs"
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"github.com/Om-Rawte/AIMenuAssistant/repository"
	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingTable       = errors.New("missing table id")
	ErrUnknownTable       = errors.New("table not found")
	ErrReservationName    = errors.New("reservation name does not match")
	ErrUnknownReservation = errors.New("reservation not found")
)

type SessionService struct {
	Cfg          *configs.Config
	Tables       *repository.TableRepository
	Reservations *repository.ReservationRepository
	Group        *GroupCartService
}

func NewSessionService(
	cfg *configs.Config,
	tables *repository.TableRepository,
	reservations *repository.ReservationRepository,
	group *GroupCartService,
) *SessionService {
	return &SessionService{Cfg: cfg, Tables: tables, Reservations: reservations, Group: group}
}

type EnterIn struct {
	QR string `json:"qr"` // raw QR payload; wins over the explicit fields

	TableID         uint   `json:"tableId"`
	ReservationID   uint   `json:"reservationId"`
	ReservationName string `json:"reservationName"`
	AIProvider      string `json:"aiProvider"`
}

type EnterOut struct {
	Token     string        `json:"token"`
	UserID    string        `json:"userId"`
	Table     *entity.Table `json:"table"`
	ExpiresIn int64         `json:"expiresIn"` // seconds
}

// Enter starts a dining session from a scanned QR (or explicit parameters).
// A missing or unknown table is a hard stop: no group-cart logic may run
// without a table scope.
func (s *SessionService) Enter(in *EnterIn) (*EnterOut, error) {
	tableID := in.TableID
	reservationID := in.ReservationID
	name := in.ReservationName
	provider := in.AIProvider

	if in.QR != "" {
		data := utils.ParseQRData(in.QR)
		tableID = data.TableID
		if data.ReservationID != 0 {
			reservationID = data.ReservationID
		}
		if data.Name != "" {
			name = data.Name
		}
		if data.AIProvider != "" {
			provider = data.AIProvider
		}
	}

	if tableID == 0 {
		return nil, ErrMissingTable
	}
	table, err := s.Tables.FindByID(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownTable
		}
		return nil, err
	}

	if reservationID != 0 {
		res, err := s.Reservations.FindByID(reservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownReservation
			}
			return nil, err
		}
		if !nameMatches(res.CustomerName, name) {
			return nil, ErrReservationName
		}
	}

	userID := uuid.NewString()
	token, err := utils.GenerateSessionToken(table.ID, userID, provider, s.Cfg.JWTSecret, s.Cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	// joining here replaces any stale subscription for the pair and restores
	// the cart from the shared record
	if _, err := s.Group.Join(table.ID, userID); err != nil {
		return nil, err
	}

	return &EnterOut{
		Token:     token,
		UserID:    userID,
		Table:     table,
		ExpiresIn: int64(s.Cfg.SessionTTL.Seconds()),
	}, nil
}

func nameMatches(stored, given string) bool {
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(given))
}
