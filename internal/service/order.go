package service

import (
	"strings"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/domain"
	"barakatfresh/pkg/utils"
)

// PlaceOrderInput 前端购物车快照。价格/数量按客户端提交值直接入库，
// 不做服务端重算（和线上契约一致，见 DESIGN.md）
type PlaceOrderInput struct {
	Items         []OrderItemInput    `json:"items"`
	Total         float64             `json:"total"`
	UserInfo      domain.DeliveryInfo `json:"userInfo"`
	PaymentMethod string              `json:"paymentMethod"`
}

// OrderItemInput 多余的客户端字段（如商品 id）在冻结时丢弃
type OrderItemInput struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderReceipt 下单成功的最小回执
type OrderReceipt struct {
	ID        string  `json:"id"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

type OrderService struct {
	orders domain.OrderRepository
	users  domain.UserRepository
}

func NewOrderService(orders domain.OrderRepository, users domain.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users}
}

func (s *OrderService) Place(userID string, in PlaceOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperr.BadRequest("Cart items required")
	}
	if in.Total <= 0 {
		return nil, apperr.BadRequest("Invalid total amount")
	}
	ui := in.UserInfo
	if strings.TrimSpace(ui.Name) == "" || strings.TrimSpace(ui.Address) == "" || strings.TrimSpace(ui.Phone) == "" {
		return nil, apperr.BadRequest("Complete delivery info required")
	}

	items := make(domain.OrderItems, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Name == "" || it.Quantity < 1 || it.Price < 0 {
			return nil, apperr.BadRequest("Invalid cart item")
		}
		// 冻结快照：只留 name/quantity/price
		items = append(items, domain.OrderItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}

	pm := in.PaymentMethod
	if pm == "" {
		pm = domain.PaymentCOD
	}
	if !domain.ValidPaymentMethod(pm) {
		return nil, apperr.BadRequest("Invalid payment method")
	}

	uid := userID
	o := &domain.Order{
		ID:            utils.NewID(),
		UserID:        &uid,
		Items:         items,
		Total:         in.Total,
		UserInfo:      ui,
		PaymentMethod: pm,
		Status:        domain.StatusPending,
	}
	// 注意：不扣减商品库存，下单和库存互不影响
	if err := s.orders.Create(o); err != nil {
		return nil, apperr.Internal("create order failed", err)
	}
	return o, nil
}

// ListAll 管理端全量列表，附带用户 {name, email} 投影
func (s *OrderService) ListAll() ([]domain.Order, error) {
	orders, err := s.orders.List()
	if err != nil {
		return nil, apperr.Internal("list orders failed", err)
	}
	if err := s.attachUsers(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(id string) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if o == nil {
		return nil, apperr.NotFound("Order not found")
	}
	tmp := []domain.Order{*o}
	if err := s.attachUsers(tmp); err != nil {
		return nil, err
	}
	return &tmp[0], nil
}

func (s *OrderService) ListByUser(userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("list orders failed", err)
	}
	return orders, nil
}

// UpdateStatus 只校验值在 6 值集合内，不限制状态跳转方向
func (s *OrderService) UpdateStatus(id, status string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, apperr.BadRequest("Invalid status")
	}
	o, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		return nil, apperr.Internal("update order failed", err)
	}
	if o == nil {
		return nil, apperr.NotFound("Order not found")
	}
	tmp := []domain.Order{*o}
	if err := s.attachUsers(tmp); err != nil {
		return nil, err
	}
	return &tmp[0], nil
}

func (s *OrderService) Delete(id string) error {
	ok, err := s.orders.Delete(id)
	if err != nil {
		return apperr.Internal("delete order failed", err)
	}
	if !ok {
		return apperr.NotFound("Order not found")
	}
	return nil
}

func (s *OrderService) attachUsers(orders []domain.Order) error {
	ids := make([]string, 0, len(orders))
	seen := map[string]struct{}{}
	for _, o := range orders {
		if o.UserID == nil {
			continue
		}
		if _, ok := seen[*o.UserID]; ok {
			continue
		}
		seen[*o.UserID] = struct{}{}
		ids = append(ids, *o.UserID)
	}
	summaries, err := s.users.Summaries(ids)
	if err != nil {
		return apperr.Internal("load order users failed", err)
	}
	for i := range orders {
		if orders[i].UserID == nil {
			continue
		}
		if u, ok := summaries[*orders[i].UserID]; ok {
			uc := u
			orders[i].User = &uc
		}
	}
	return nil
}
