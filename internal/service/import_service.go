package service

import (
	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/repository"

	"gorm.io/gorm"
)

// ImportService 分销导入服务
type ImportService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	importRepo  repository.ImportRepository
	shopService *ShopService
}

// NewImportService 创建导入服务
func NewImportService(userRepo repository.UserRepository, productRepo repository.ProductRepository, importRepo repository.ImportRepository, shopService *ShopService) *ImportService {
	return &ImportService{
		userRepo:    userRepo,
		productRepo: productRepo,
		importRepo:  importRepo,
		shopService: shopService,
	}
}

// ImportProduct 将商家商品导入分销商店铺。
// 返回导入记录与是否新建；重复导入幂等返回已有记录。
// 台账记录的 product_id 始终是商家原始商品，传入克隆副本时自动归位。
func (s *ImportService) ImportProduct(dropshipperID, productID uint) (*models.DropshipImport, bool, error) {
	caller, err := s.userRepo.GetByID(dropshipperID)
	if err != nil {
		return nil, false, err
	}
	if caller == nil || caller.Role != constants.RoleDropshipper {
		return nil, false, ErrImportForbidden
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}
	originalID := product.UnderlyingProductID()
	original := product
	if originalID != product.ID {
		original, err = s.productRepo.GetByID(originalID)
		if err != nil {
			return nil, false, err
		}
		if original == nil {
			return nil, false, ErrProductNotFound
		}
	}

	shop, err := s.shopService.GetOrCreateShop(dropshipperID, constants.ShopTypeDropshipper)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.importRepo.GetByTriple(dropshipperID, shop.ID, original.ID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	var record *models.DropshipImport
	created := false
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		importRepo := s.importRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		found, err := importRepo.GetByTriple(dropshipperID, shop.ID, original.ID)
		if err != nil {
			return err
		}
		if found != nil {
			record = found
			return nil
		}

		shopID := shop.ID
		sourceID := original.ID
		clone := &models.Product{
			VendorID:        original.VendorID,
			ShopID:          &shopID,
			SourceProductID: &sourceID,
			Title:           original.Title,
			Description:     original.Description,
			Price:           original.Price,
			Category:        original.Category,
			Stock:           original.Stock,
			ImageRef:        original.ImageRef,
			IsActive:        original.IsActive,
		}
		if err := productRepo.Create(clone); err != nil {
			return err
		}

		entry := &models.DropshipImport{
			DropshipperID:  dropshipperID,
			ShopID:         shop.ID,
			ProductID:      original.ID,
			CloneProductID: clone.ID,
		}
		if err := importRepo.Create(entry); err != nil {
			return err
		}
		record = entry
		created = true
		return nil
	})
	if err != nil {
		// 并发导入撞唯一索引会中止整个事务（克隆副本一并回滚），回查必须放在
		// 回滚之后；查到已有记录即视为幂等成功。
		refetched, refetchErr := s.importRepo.GetByTriple(dropshipperID, shop.ID, original.ID)
		if refetchErr == nil && refetched != nil {
			logger.Debugw("import_duplicate_recovered",
				"dropshipper_id", dropshipperID,
				"product_id", original.ID,
			)
			return refetched, false, nil
		}
		return nil, false, err
	}
	return record, created, nil
}

// ListImports 获取分销商的导入台账
func (s *ImportService) ListImports(dropshipperID uint) ([]models.DropshipImport, error) {
	return s.importRepo.ListByDropshipper(dropshipperID)
}
