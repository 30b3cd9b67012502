package service

import (
	"strings"

	"github.com/dropmart/dropmart/internal/config"
	"github.com/dropmart/dropmart/internal/constants"
	"github.com/dropmart/dropmart/internal/logger"
	"github.com/dropmart/dropmart/internal/models"
	"github.com/dropmart/dropmart/internal/repository"

	"gorm.io/gorm"
)

// UpdateShopInput 店铺更新输入，nil 字段保持不变
type UpdateShopInput struct {
	Name        *string
	CompanyName *string
	Description *string
	LogoRef     *string
}

// ShopView 店铺展示视图，附带店内商品清单
type ShopView struct {
	models.Shop
	Products []models.Product `json:"products"`
}

// ShopTypeForRole 按角色推导默认店铺类型；买家没有店铺，返回空串
func ShopTypeForRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case constants.RoleVendor:
		return constants.ShopTypeVendor
	case constants.RoleDropshipper:
		return constants.ShopTypeDropshipper
	default:
		return ""
	}
}

// ShopService 店铺注册表服务
type ShopService struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	uploads  *UploadService
	cfg      *config.ShopConfig
}

// NewShopService 创建店铺服务
func NewShopService(shopRepo repository.ShopRepository, userRepo repository.UserRepository, uploads *UploadService, cfg *config.ShopConfig) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		userRepo: userRepo,
		uploads:  uploads,
		cfg:      cfg,
	}
}

// GetOrCreateShop 获取用户指定类型的店铺，不存在则创建。
// 并发下幂等：创建撞唯一索引时回查返回已有记录。
func (s *ShopService) GetOrCreateShop(ownerID uint, shopType string) (*models.Shop, error) {
	if ownerID == 0 {
		return nil, ErrShopNotFound
	}
	if shopType != constants.ShopTypeVendor && shopType != constants.ShopTypeDropshipper {
		return nil, ErrShopNotFound
	}

	existing, err := s.shopRepo.GetByOwnerAndType(ownerID, shopType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	var shop *models.Shop
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.shopRepo.WithTx(tx)
		found, err := repo.GetByOwnerAndType(ownerID, shopType)
		if err != nil {
			return err
		}
		if found != nil {
			shop = found
			return nil
		}
		created := &models.Shop{
			OwnerID:     ownerID,
			ShopType:    shopType,
			Name:        s.defaultShopName(owner),
			CompanyName: strings.TrimSpace(owner.CompanyName),
		}
		if err := repo.Create(created); err != nil {
			return err
		}
		shop = created
		return nil
	})
	if err != nil {
		// 并发创建撞唯一索引会中止整个事务，回查必须放在回滚之后；查到即幂等成功
		// （postgres 上事务中止后事务内的任何语句都会报错）。
		refetched, refetchErr := s.shopRepo.GetByOwnerAndType(ownerID, shopType)
		if refetchErr == nil && refetched != nil {
			return refetched, nil
		}
		return nil, err
	}
	return shop, nil
}

// GetShop 获取店铺
func (s *ShopService) GetShop(shopID uint) (*models.Shop, error) {
	shop, err := s.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// ListMyShops 获取用户名下全部店铺
func (s *ShopService) ListMyShops(ownerID uint) ([]models.Shop, error) {
	if ownerID == 0 {
		return []models.Shop{}, nil
	}
	return s.shopRepo.ListByOwner(ownerID)
}

// UpdateShop 更新店铺资料，仅店主可操作。
// 换 Logo 时旧文件在新引用落库后才删除，删除失败只记日志。
func (s *ShopService) UpdateShop(shopID, callerID uint, input UpdateShopInput) (*models.Shop, error) {
	shop, err := s.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	if shop.OwnerID != callerID {
		return nil, ErrShopForbidden
	}

	oldLogo := shop.LogoRef
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != "" {
			shop.Name = name
		}
	}
	if input.CompanyName != nil {
		shop.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.Description != nil {
		shop.Description = strings.TrimSpace(*input.Description)
	}
	logoChanged := false
	if input.LogoRef != nil && strings.TrimSpace(*input.LogoRef) != oldLogo {
		shop.LogoRef = strings.TrimSpace(*input.LogoRef)
		logoChanged = true
	}

	if err := s.shopRepo.Update(shop); err != nil {
		return nil, err
	}

	if logoChanged && oldLogo != "" && s.uploads != nil {
		if err := s.uploads.DeleteFile(oldLogo); err != nil {
			logger.Warnw("shop_logo_cleanup_failed", "shop_id", shop.ID, "logo_ref", oldLogo, "error", err)
		}
	}
	return shop, nil
}

func (s *ShopService) defaultShopName(owner *models.User) string {
	base := strings.TrimSpace(owner.DisplayName)
	if base == "" {
		base = strings.TrimSpace(owner.CompanyName)
	}
	if base == "" {
		if idx := strings.Index(owner.Email, "@"); idx > 0 {
			base = owner.Email[:idx]
		} else {
			base = owner.Email
		}
	}
	suffix := "'s Shop"
	if s.cfg != nil && strings.TrimSpace(s.cfg.DefaultNameSuffix) != "" {
		suffix = s.cfg.DefaultNameSuffix
	}
	return base + suffix
}
