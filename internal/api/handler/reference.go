package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/reference"
	"github.com/vfg2006/pharma-sfe-api/pkg/apiErrors"
)

// ListDoctors lista todos os doutores do território
func ListDoctors(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctors, err := service.ListDoctors()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar doutores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(doctors)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateDoctor cadastra um novo doutor
func CreateDoctor(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateDoctor")

		var doctor domain.Doctor
		if err := json.NewDecoder(r.Body).Decode(&doctor); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateDoctor(&doctor)
		if err != nil {
			handleReferenceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateDoctor atualiza os dados cadastrais de um doutor
func UpdateDoctor(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateDoctor")

		doctorID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if doctorID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do doutor não fornecido", nil)
			return
		}

		var req domain.UpdateDoctorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = doctorID

		doctor, err := service.UpdateDoctor(&req)
		if err != nil {
			handleReferenceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doctor)
	}
}

// DeleteDoctor remove um doutor do território
func DeleteDoctor(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteDoctor")

		doctorID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if doctorID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do doutor não fornecido", nil)
			return
		}

		if err := service.DeleteDoctor(doctorID); err != nil {
			handleReferenceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListBricks lista os bricks do território
func ListBricks(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bricks, err := service.ListBricks()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar bricks", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bricks)
	}
}

// CreateBrick cadastra um novo brick
func CreateBrick(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBrick")

		var brick domain.Brick
		if err := json.NewDecoder(r.Body).Decode(&brick); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateBrick(&brick)
		if err != nil {
			handleReferenceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateBrick atualiza um brick existente
func UpdateBrick(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBrick")

		brickID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brickID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do brick não fornecido", nil)
			return
		}

		var brick domain.Brick
		if err := json.NewDecoder(r.Body).Decode(&brick); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		brick.ID = brickID

		if err := service.UpdateBrick(&brick); err != nil {
			handleReferenceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(brick)
	}
}

// DeleteBrick remove um brick
func DeleteBrick(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBrick")

		brickID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brickID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do brick não fornecido", nil)
			return
		}

		if err := service.DeleteBrick(brickID); err != nil {
			handleReferenceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListProducts lista o portfólio de produtos
func ListProducts(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

// CreateProduct cadastra um novo produto
func CreateProduct(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateProduct(&product)
		if err != nil {
			handleReferenceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateProduct atualiza um produto existente
func UpdateProduct(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProduct")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		product.ID = productID

		if err := service.UpdateProduct(&product); err != nil {
			handleReferenceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	}
}

// DeleteProduct remove um produto do portfólio
func DeleteProduct(service reference.ReferenceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProduct")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		if err := service.DeleteProduct(productID); err != nil {
			handleReferenceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleReferenceError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, reference.ErrDoctorNotFound),
		errors.Is(err, reference.ErrBrickNotFound),
		errors.Is(err, reference.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, reference.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar dados de referência", nil)
	}
}
