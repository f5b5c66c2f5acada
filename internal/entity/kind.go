package entity

type Kind int

const (
	MainButton Kind = iota
	ClickPowerUpgrade
	ProducerCountUpgrade
	ProducerPowerUpgrade
	ProducerPeriodUpgrade
	Producer
)

// Upgrades lists the four station kinds in evaluation and layout order.
var Upgrades = [...]Kind{
	ClickPowerUpgrade,
	ProducerCountUpgrade,
	ProducerPowerUpgrade,
	ProducerPeriodUpgrade,
}

// Name is the label drawn on the actor.
func (k Kind) Name() string {
	switch k {
	case MainButton:
		return "Button"
	case ClickPowerUpgrade:
		return "Power"
	case ProducerCountUpgrade:
		return "Clicker"
	case ProducerPowerUpgrade:
		return "ClickerPow"
	case ProducerPeriodUpgrade:
		return "ClickerTim"
	case Producer:
		return "Producer"
	default:
		return "Unknown"
	}
}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) IsUpgrade() bool {
	return k >= ClickPowerUpgrade && k <= ProducerPeriodUpgrade
}

func (k Kind) IsSingleton() bool {
	return k >= MainButton && k <= ProducerPeriodUpgrade
}
