package catalog

import "gorm.io/gorm"

type CatalogContainer struct {
	Handler *Handler
	Service Service
}

func NewCatalogContainer(db *gorm.DB) (*CatalogContainer, error) {
	if err := Migrate(db); err != nil {
		return nil, err
	}

	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CatalogContainer{
		Handler: handler,
		Service: service,
	}, nil
}
