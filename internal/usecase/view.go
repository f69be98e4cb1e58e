package usecase

import (
	"time"

	"storefront/internal/domain/entity"
)

// OrderView is the fixed projection of an Order returned by every order
// endpoint: create, update, listing and the public lookup.
type OrderView struct {
	ID          uint          `json:"id"`
	Business    *BusinessView `json:"businessId"`
	ServiceUser *UserView     `json:"serviceUsers"`
	StoreUser   *UserView     `json:"storeUser"`
	Services    string        `json:"services"`
	Description string        `json:"description"`
	Status      int           `json:"status"`
	FullPrice   string        `json:"full_price"`
	FeePrice    string        `json:"fee_price"`
	ProfitPrice string        `json:"profit_price"`
	Discount    string        `json:"discount"`
	CreatedAt   time.Time     `json:"created_at"`
}

// BusinessView is the outward representation of a Business.
type BusinessView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Family       string    `json:"family"`
	BusinessName string    `json:"business_name"`
	Address      string    `json:"address"`
	Mobile       string    `json:"mobile"`
	Tell         string    `json:"tell"`
	Zipcode      string    `json:"zipcode"`
	NationalID   string    `json:"national_id"`
	StoreUserID  uint      `json:"store_user_id"`
	StoreUser    *UserView `json:"storeUser,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ServiceView is the outward representation of a Service.
type ServiceView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	StoreUserID uint      `json:"store_user_id"`
	StoreUser   *UserView `json:"storeUser,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserView is the outward representation of a User. The password hash never
// leaves the domain layer.
type UserView struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Family string   `json:"family"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Roles  []string `json:"roles"`
}

// NewOrderView maps an order entity onto the fixed projection.
func NewOrderView(order *entity.Order) *OrderView {
	if order == nil {
		return nil
	}

	return &OrderView{
		ID:          order.ID,
		Business:    NewBusinessView(order.Business),
		ServiceUser: NewUserView(order.ServiceUser),
		StoreUser:   NewUserView(order.StoreUser),
		Services:    order.Services,
		Description: order.Description,
		Status:      order.Status,
		FullPrice:   order.FullPrice,
		FeePrice:    order.FeePrice,
		ProfitPrice: order.ProfitPrice,
		Discount:    order.Discount,
		CreatedAt:   order.CreatedAt,
	}
}

// NewOrderViews maps a slice of order entities.
func NewOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, NewOrderView(order))
	}

	return views
}

// NewBusinessView maps a business entity onto its outward representation.
func NewBusinessView(business *entity.Business) *BusinessView {
	if business == nil {
		return nil
	}

	return &BusinessView{
		ID:           business.ID,
		Name:         business.Name,
		Family:       business.Family,
		BusinessName: business.BusinessName,
		Address:      business.Address,
		Mobile:       business.Mobile,
		Tell:         business.Tell,
		Zipcode:      business.Zipcode,
		NationalID:   business.NationalID,
		StoreUserID:  business.StoreUserID,
		StoreUser:    NewUserView(business.StoreUser),
		CreatedAt:    business.CreatedAt,
		UpdatedAt:    business.UpdatedAt,
	}
}

// NewServiceView maps a service entity onto its outward representation.
func NewServiceView(service *entity.Service) *ServiceView {
	if service == nil {
		return nil
	}

	return &ServiceView{
		ID:          service.ID,
		Name:        service.Name,
		Price:       service.Price,
		Description: service.Description,
		StoreUserID: service.StoreUserID,
		StoreUser:   NewUserView(service.StoreUser),
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

// NewUserView maps a user entity onto its outward representation.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:     user.ID,
		Name:   user.Name,
		Family: user.Family,
		Email:  user.Email,
		Phone:  user.Phone,
		Roles:  user.Roles.ToStrings(),
	}
}
