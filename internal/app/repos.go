package app

import (
	"gorm.io/gorm"

	catalogrepo "github.com/villagekeep/villagekeep-backend/internal/data/repos/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type Repos struct {
	Houses      catalogrepo.HouseRepo
	Accessories catalogrepo.AccessoryRepo
	Staged      catalogrepo.StagedHouseRepo
	Approvals   catalogrepo.ApprovalRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Houses:      catalogrepo.NewHouseRepo(db, log),
		Accessories: catalogrepo.NewAccessoryRepo(db, log),
		Staged:      catalogrepo.NewStagedHouseRepo(db, log),
		Approvals:   catalogrepo.NewApprovalRepo(db, log),
	}
}
