//go:generate goverter gen github.com/DRSN-tech/retail-backend/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/retail-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertID
type ProductInfoConverter interface {
	ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
	ToArrRedisModel(entities []usecase.ProductInfo) []ProductInfoRedisModel
	ToArrUseCase(models []ProductInfoRedisModel) []usecase.ProductInfo
}

func ConvertID(id *int64) *int64 {
	return id
}
