package services

import (
	"strconv"
	"strings"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/repository"
)

type ReservationInput struct {
	Name    string
	Phone   string
	Persons string
	Date    string
	Time    string
}

type ReservationService struct {
	Repo *repository.ReservationRepository
}

func NewReservationService(repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{Repo: repo}
}

func (s *ReservationService) Create(in ReservationInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, apperr.Invalid("name", "name is required")
	}

	persons, err := strconv.Atoi(strings.TrimSpace(in.Persons))
	if err != nil {
		return 0, apperr.Invalid("persons", "persons must be a whole number")
	}
	if persons < 1 {
		return 0, apperr.Invalid("persons", "persons must be at least 1")
	}

	resv := &entity.Reservation{
		Name:    name,
		Phone:   strings.TrimSpace(in.Phone),
		Persons: persons,
		Date:    strings.TrimSpace(in.Date),
		Time:    strings.TrimSpace(in.Time),
	}
	if err := s.Repo.Create(resv); err != nil {
		return 0, err
	}
	return resv.ID, nil
}

func (s *ReservationService) Recent(limit int) ([]entity.Reservation, error) {
	return s.Repo.Recent(limit)
}

func (s *ReservationService) Count() (int64, error) {
	return s.Repo.Count()
}
