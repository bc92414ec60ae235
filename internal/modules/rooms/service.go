package rooms

import (
	"context"
	"errors"

	"hotelms/internal/domain"
	"hotelms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("room not found")

type Service struct {
	rooms *repository.RoomRepository
}

func NewService(rooms *repository.RoomRepository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListByStatus(ctx, domain.RoomAvailable)
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	status := domain.RoomStatus(req.Status)
	if status == "" {
		status = domain.RoomAvailable
	}

	room := &domain.Room{
		Number:     req.Number,
		Type:       req.Type,
		Price:      req.Price,
		Status:     status,
		Equipments: datatypes.NewJSONSlice(req.Equipments),
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRoomRequest) (*domain.Room, error) {
	updates := map[string]interface{}{}
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Equipments != nil {
		updates["equipments"] = datatypes.NewJSONSlice(*req.Equipments)
	}

	room, err := s.rooms.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
