package domain

import "time"

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"

	PaymentCOD  = "cod"
	PaymentCard = "card"
)

// OrderStatuses 固定 6 值集合。状态之间不做前向约束：
// 管理端可以把任意订单置为集合内任意值（和线上行为一致）
var OrderStatuses = []string{
	StatusPending, StatusConfirmed, StatusProcessing,
	StatusShipped, StatusDelivered, StatusCancelled,
}

func ValidStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ValidPaymentMethod(m string) bool {
	return m == PaymentCOD || m == PaymentCard
}

// OrderItem 下单时冻结的快照，不回指 Product
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderItems []OrderItem

// DeliveryInfo 收货信息快照，独立于 User 记录
type DeliveryInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Order struct {
	ID            string       `gorm:"primaryKey;type:varchar(32)" json:"id"`
	UserID        *string      `gorm:"index;type:varchar(32)" json:"userId"` // 仅种子数据可为空
	Items         OrderItems   `gorm:"serializer:json" json:"items"`
	Total         float64      `gorm:"not null" json:"total"`
	UserInfo      DeliveryInfo `gorm:"embedded;embeddedPrefix:delivery_" json:"userInfo"`
	PaymentMethod string       `gorm:"size:16;not null;default:cod" json:"paymentMethod"`
	Status        string       `gorm:"size:16;not null;default:pending;index" json:"status"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`

	// 管理端列表联查出来的用户投影，不落库
	User *UserSummary `gorm:"-" json:"user,omitempty"`
}

func (Order) TableName() string { return "orders" }

type OrderRepository interface {
	Create(o *Order) error
	FindByID(id string) (*Order, error)
	// List 全量，按创建时间倒序
	List() ([]Order, error)
	ListByUser(userID string) ([]Order, error)
	// UpdateStatus 返回更新后的订单；不存在返回 nil
	UpdateStatus(id, status string) (*Order, error)
	Delete(id string) (bool, error)
}
