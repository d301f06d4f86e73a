package reference

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/pkg/utils"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrBrickNotFound   = errors.New("brick not found")
	ErrProductNotFound = errors.New("product not found")
	ErrMissingName     = errors.New("name is required")
)

// ReferenceService administra os dados de referência do território: doutores,
// produtos e bricks. Operações restritas a administradores via middleware.
type ReferenceService interface {
	ListDoctors() ([]*domain.Doctor, error)
	CreateDoctor(doctor *domain.Doctor) (*domain.Doctor, error)
	UpdateDoctor(req *domain.UpdateDoctorRequest) (*domain.Doctor, error)
	DeleteDoctor(doctorID string) error

	ListBricks() ([]*domain.Brick, error)
	CreateBrick(brick *domain.Brick) (*domain.Brick, error)
	UpdateBrick(brick *domain.Brick) error
	DeleteBrick(brickID string) error

	ListProducts() ([]*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	DeleteProduct(productID string) error
}

type Service struct {
	doctorRepo  repository.DoctorRepository
	brickRepo   repository.BrickRepository
	productRepo repository.ProductRepository
}

func NewService(
	doctorRepo repository.DoctorRepository,
	brickRepo repository.BrickRepository,
	productRepo repository.ProductRepository,
) ReferenceService {
	return &Service{
		doctorRepo:  doctorRepo,
		brickRepo:   brickRepo,
		productRepo: productRepo,
	}
}

func (s *Service) ListDoctors() ([]*domain.Doctor, error) {
	return s.doctorRepo.ListAll()
}

func (s *Service) CreateDoctor(doctor *domain.Doctor) (*domain.Doctor, error) {
	if doctor.Name == "" {
		return nil, ErrMissingName
	}

	// Brick precisa existir antes de vincular o doutor
	if doctor.BrickID != "" {
		brick, err := s.brickRepo.GetByID(doctor.BrickID)
		if err != nil {
			return nil, err
		}
		if brick == nil {
			return nil, ErrBrickNotFound
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	doctor.ID = id

	created, err := s.doctorRepo.Create(doctor)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"doctor_id": created.ID,
		"brick_id":  created.BrickID,
	}).Info("doutor cadastrado")

	return created, nil
}

func (s *Service) UpdateDoctor(req *domain.UpdateDoctorRequest) (*domain.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(req.ID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.BrickID != nil {
		brick, err := s.brickRepo.GetByID(*req.BrickID)
		if err != nil {
			return nil, err
		}
		if brick == nil {
			return nil, ErrBrickNotFound
		}
		doctor.BrickID = *req.BrickID
	}

	if err := s.doctorRepo.Update(doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

func (s *Service) DeleteDoctor(doctorID string) error {
	doctor, err := s.doctorRepo.GetByID(doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	return s.doctorRepo.Delete(doctorID)
}

func (s *Service) ListBricks() ([]*domain.Brick, error) {
	return s.brickRepo.ListAll()
}

func (s *Service) CreateBrick(brick *domain.Brick) (*domain.Brick, error) {
	if brick.Name == "" {
		return nil, ErrMissingName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	brick.ID = id

	if err := s.brickRepo.Create(brick); err != nil {
		return nil, err
	}

	return brick, nil
}

func (s *Service) UpdateBrick(brick *domain.Brick) error {
	existing, err := s.brickRepo.GetByID(brick.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBrickNotFound
	}

	return s.brickRepo.Update(brick)
}

func (s *Service) DeleteBrick(brickID string) error {
	existing, err := s.brickRepo.GetByID(brickID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBrickNotFound
	}

	return s.brickRepo.Delete(brickID)
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.ListAll()
}

func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, ErrMissingName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) UpdateProduct(product *domain.Product) error {
	existing, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	return s.productRepo.Update(product)
}

func (s *Service) DeleteProduct(productID string) error {
	existing, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	return s.productRepo.Delete(productID)
}
