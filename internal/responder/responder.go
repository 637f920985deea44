package responder

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/techstore/chatbot/internal/catalog"
	"github.com/techstore/chatbot/internal/intent"
	"github.com/techstore/chatbot/internal/metrics"
)

// Reply is a rendered bot answer: the fulfillment text plus the quick-reply
// labels the client offers as follow-up buttons. Every intent branch returns
// at least one quick reply so the UI always stays actionable.
type Reply struct {
	Text         string
	QuickReplies []string
}

type Catalog interface {
	Order(id string) (catalog.Order, bool)
	FindProductByName(keyword string) (catalog.Product, bool)
	Products() []catalog.Product
	Policies() catalog.Policies
}

type Responder struct {
	catalog Catalog
	logger  *zap.Logger
}

func New(c Catalog, logger *zap.Logger) *Responder {
	return &Responder{catalog: c, logger: logger}
}

// Respond classifies the query, resolves any referenced order or product and
// renders the reply. It is a pure function of the catalog and its inputs.
func (r *Responder) Respond(ctx context.Context, query string, params map[string]string) (Reply, error) {
	tag := intent.Classify(query)
	metrics.IntentsTotal.WithLabelValues(string(tag)).Inc()
	r.logger.Debug("classified query",
		zap.String("intent", string(tag)),
		zap.String("query", query),
	)

	switch tag {
	case intent.TrackOrder:
		return r.trackOrder(query, params), nil
	case intent.CheckStock:
		return r.checkStock(query), nil
	case intent.ShippingInfo:
		return r.shippingInfo(), nil
	case intent.ReturnsInfo:
		return r.returnsInfo(), nil
	case intent.ContactInfo:
		return r.contactInfo(), nil
	case intent.Greeting:
		return r.greeting(), nil
	default:
		return r.fallback(), nil
	}
}

func (r *Responder) trackOrder(query string, params map[string]string) Reply {
	orderNumber := params["orderNumber"]
	if orderNumber == "" {
		orderNumber = intent.ExtractOrderNumber(query)
	}

	order, ok := catalog.Order{}, false
	if orderNumber != "" {
		order, ok = r.catalog.Order(orderNumber)
	}
	if !ok {
		metrics.CatalogMissesTotal.WithLabelValues("orders").Inc()
		return Reply{
			Text: "I can help you track your order! We have these demo orders:\n\n" +
				"• 📦 ORDER-123 (Shipped - Headphones)\n" +
				"• ✅ ORDER-456 (Delivered - Smart Watch)\n" +
				"• ⏳ ORDER-789 (Processing - Laptop)\n\n" +
				"Which order would you like to check?",
			QuickReplies: []string{"ORDER-123", "ORDER-456", "ORDER-789", "Contact Support"},
		}
	}

	item := order.Items[0].Name
	switch order.Status {
	case "delivered":
		return Reply{
			Text: fmt.Sprintf("✅ Order %s was delivered on %s at %s.\n\n📦 %s\n🎯 Tracking: %s (%s)\n💰 Total: $%.2f\n\nHope you're enjoying your purchase!",
				orderNumber, order.DeliveredDate, order.DeliveredTime, item, order.TrackingNumber, order.Carrier, order.Total),
			QuickReplies: []string{"Start Return", "Contact Support", "Track Another Order"},
		}
	case "shipped":
		return Reply{
			Text: fmt.Sprintf("🚚 Order %s is shipped and on the way!\n\n📦 %s\n📅 Shipped: %s\n🎯 Expected: %s\n📦 Tracking: %s (%s)\n\nYou can track your package using the tracking number above.",
				orderNumber, item, order.ShippedDate, order.EstimatedDelivery, order.TrackingNumber, order.Carrier),
			QuickReplies: []string{"Tracking Updates", "Contact Support", "Another Order"},
		}
	case "processing":
		return Reply{
			Text: fmt.Sprintf("⏳ Order %s is processing.\n\n📦 %s\n📅 Expected to ship by: %s\n\nWe're preparing your order for shipment. You'll receive tracking info once it ships.",
				orderNumber, item, order.EstimatedDelivery),
			QuickReplies: []string{"Contact Support", "Track Another Order", "Shipping Info"},
		}
	default:
		return Reply{
			Text:         fmt.Sprintf("Order %s status: %s", orderNumber, order.Status),
			QuickReplies: []string{"Contact Support", "Track Another Order"},
		}
	}
}

func (r *Responder) checkStock(query string) Reply {
	if keyword := intent.ExtractProductKeyword(query); keyword != "" {
		if product, ok := r.catalog.FindProductByName(keyword); ok {
			if product.InStock() {
				features := make([]string, 0, len(product.Features))
				for _, f := range product.Features {
					features = append(features, "• "+f)
				}
				return Reply{
					Text: fmt.Sprintf("✅ %s is IN STOCK! 🎉\n\n💰 Price: $%.2f\n📦 Available: %d units\n📝 %s\n\nKey Features:\n%s",
						product.Name, product.Price, product.Stock, product.Description, strings.Join(features, "\n")),
					QuickReplies: []string{"Add to Cart", "Shipping Info", "Other Products"},
				}
			}
			return Reply{
				Text: fmt.Sprintf("❌ %s is currently OUT OF STOCK\n\n💰 Price: $%.2f\n📦 Expected Restock: %s\n📝 %s\n\nWould you like to be notified when it's available again?",
					product.Name, product.Price, product.RestockDate, product.Description),
				QuickReplies: []string{"Notify Me", "Similar Products", "Contact Support"},
			}
		}
		metrics.CatalogMissesTotal.WithLabelValues("products").Inc()
	}

	var b strings.Builder
	b.WriteString("I can check product availability! Here's what we have:\n\n")
	for _, p := range r.catalog.Products() {
		hint := "In Stock"
		if !p.InStock() {
			hint = "Restocking Soon"
		}
		fmt.Fprintf(&b, "• %s - $%.2f (%s)\n", p.Name, p.Price, hint)
	}
	b.WriteString("\nWhich product are you interested in?")
	return Reply{
		Text:         b.String(),
		QuickReplies: []string{"Headphones", "Smart Watch", "Laptop", "Smartphone"},
	}
}

func (r *Responder) shippingInfo() Reply {
	p := r.catalog.Policies().Shipping
	return Reply{
		Text: fmt.Sprintf("📦 SHIPPING INFORMATION\n\n• 🆓 FREE Standard Shipping on orders over $%d\n• 🚚 Standard Delivery: %s\n• ⚡ Express Delivery: %s\n• 🌍 International: %s\n• 📦 Carriers: %s\n\nAll packages include tracking and insurance.",
			p.FreeThreshold, p.Standard, p.Express, p.International, strings.Join(p.Carriers, ", ")),
		QuickReplies: []string{"Track Order", "Return Policy", "Contact Support"},
	}
}

func (r *Responder) returnsInfo() Reply {
	p := r.catalog.Policies().Returns
	return Reply{
		Text: fmt.Sprintf("🔄 RETURNS & EXCHANGES\n\n• 📅 %d-Day Return Policy\n• ✅ %s\n• 📦 %s\n• 💰 Refunds processed in %s\n\nExchanges are available for different sizes or colors.",
			p.Period, p.Condition, p.Process, p.RefundTime),
		QuickReplies: []string{"Start Return", "Contact Returns", "Shipping Info"},
	}
}

func (r *Responder) contactInfo() Reply {
	c := r.catalog.Policies().Contact
	return Reply{
		Text: fmt.Sprintf("📞 CONTACT & SUPPORT\n\n• 📧 Email: %s\n• 📞 Phone: %s\n• 🕒 Hours: %s\n• 💬 Live Chat: %s\n\nWe're here to help! What can we assist you with?",
			c.Email, c.Phone, c.Hours, c.LiveChat),
		QuickReplies: []string{"Track Order", "Product Question", "Returns Help", "Shipping Question"},
	}
}

func (r *Responder) greeting() Reply {
	return Reply{
		Text: "👋 Hello! Welcome to TechStore! I'm your shopping assistant. I can help you with:\n\n" +
			"• 📦 Order Tracking & Status\n• 🏪 Product Availability & Info\n• 📦 Shipping & Delivery\n• 🔄 Returns & Exchanges\n• 📞 Customer Support\n\n" +
			"How can I help you today?",
		QuickReplies: []string{"Track Order", "Check Stock", "Shipping Info", "Contact Support"},
	}
}

func (r *Responder) fallback() Reply {
	return Reply{
		Text: "I'm here to help with your shopping needs! I can assist with:\n\n" +
			"• Order tracking and status updates\n• Product availability and information\n• Shipping and delivery details\n• Returns and exchanges\n• General customer support\n\n" +
			"What would you like to know?",
		QuickReplies: []string{"Track Order", "Check Stock", "Shipping Info", "Contact Support"},
	}
}
