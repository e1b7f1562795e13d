package shop

// Delivery methods offered at checkout.
const (
	DeliveryOffline  = "offline"  // pickup at the store
	DeliveryInternal = "internal" // shop courier, flat fee
	DeliveryExternal = "external" // third-party courier, quoted separately
)

var DeliveryMethods = []string{DeliveryOffline, DeliveryInternal, DeliveryExternal}

func validDelivery(method string) bool {
	for _, m := range DeliveryMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ShippingPolicy prices delivery methods. External courier costs are shown as
// an estimate and only enter the total when PriceExternal is set.
type ShippingPolicy struct {
	InternalCost     int64
	ExternalCost     int64
	PriceExternal    bool
	ExternalEstimate string
}

func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		InternalCost:     20000,
		ExternalCost:     20000,
		PriceExternal:    false,
		ExternalEstimate: "Estimasi Rp 15rb-25rb",
	}
}

// Cost is the amount added to the order total for method. Unknown and empty
// methods cost nothing.
func (p ShippingPolicy) Cost(method string) int64 {
	switch method {
	case DeliveryInternal:
		return p.InternalCost
	case DeliveryExternal:
		if p.PriceExternal {
			return p.ExternalCost
		}
	}
	return 0
}

// Display is the shipping line shown in the checkout summary.
func (p ShippingPolicy) Display(method string) string {
	if method == DeliveryExternal && !p.PriceExternal {
		return p.ExternalEstimate
	}
	return FormatRupiah(p.Cost(method))
}
