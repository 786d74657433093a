// Package seed populates a fresh database with ST-themed demo data:
// ten distributor customers, a catalog of common ST parts, and a spread
// of historical orders across the lifecycle statuses. Seeding is
// idempotent and skips a database that already has customers.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/semidist/storders/internal/storage"
)

const orderCount = 40

type customerSpec struct {
	company, contact, email, phone, address, city, country string
}

type productSpec struct {
	partNumber, name, description, category, family string
	price                                           string
	stock, leadDays                                 int
}

var customers = []customerSpec{
	{"TechFusion GmbH", "Klaus Weber", "k.weber@techfusion.de", "+49-89-555-0101", "Maximilianstraße 35", "Munich", "Germany"},
	{"Sakura Electronics Co.", "Yuki Tanaka", "y.tanaka@sakuraelec.jp", "+81-3-5555-0202", "2-4-1 Marunouchi", "Tokyo", "Japan"},
	{"Sierra Circuits Inc.", "Emily Chen", "e.chen@sierracircuits.com", "+1-408-555-0303", "1850 Technology Dr", "San Jose", "USA"},
	{"HanBit Semiconductor", "Min-jun Park", "mjpark@hanbitsemi.kr", "+82-2-555-0404", "231 Teheran-ro", "Seoul", "South Korea"},
	{"Shenzhen IoT Solutions", "Wei Zhang", "w.zhang@sziot.cn", "+86-755-555-0505", "88 Keyuan Road, Nanshan", "Shenzhen", "China"},
	{"Cambridge Embedded Systems", "James O'Brien", "j.obrien@cambridgeembedded.co.uk", "+44-1223-555-0606", "15 Station Road", "Cambridge", "UK"},
	{"Lyon Automatismes SAS", "Pierre Dubois", "p.dubois@lyonauto.fr", "+33-4-555-0707", "42 Rue de la République", "Lyon", "France"},
	{"Milano Robotica S.r.l.", "Giulia Rossi", "g.rossi@milanorobotica.it", "+39-02-555-0808", "Via Torino 25", "Milan", "Italy"},
	{"Nordic Sensor AB", "Erik Lindqvist", "e.lindqvist@nordicsensor.se", "+46-8-555-0909", "Sveavägen 44", "Stockholm", "Sweden"},
	{"Maple Leaf Electronics", "Sarah Thompson", "s.thompson@mapleleafelectronics.ca", "+1-613-555-1010", "350 Albert St", "Ottawa", "Canada"},
}

var products = []productSpec{
	{"STM32F407VGT6", "STM32F407 MCU 168MHz 1MB Flash", "ARM Cortex-M4 with FPU, 168 MHz, 1MB Flash, 192KB SRAM, USB OTG", "Microcontrollers", "STM32F4", "8.5200", 15000, 12},
	{"STM32F446RET6", "STM32F446 MCU 180MHz 512KB Flash", "ARM Cortex-M4 with FPU, 180 MHz, 512KB Flash, 128KB SRAM", "Microcontrollers", "STM32F4", "6.7500", 22000, 10},
	{"STM32F411CEU6", "STM32F411 MCU 100MHz 512KB Flash", "ARM Cortex-M4 with FPU, 100 MHz, 512KB Flash, 128KB SRAM, low power", "Microcontrollers", "STM32F4", "3.9800", 35000, 8},
	{"STM32L476RGT6", "STM32L476 Ultra-Low-Power MCU", "ARM Cortex-M4 with FPU, 80 MHz, 1MB Flash, ultra-low-power", "Microcontrollers", "STM32L4", "7.2000", 18000, 14},
	{"STM32L432KCU6", "STM32L432 Ultra-Low-Power MCU", "ARM Cortex-M4, 80 MHz, 256KB Flash, ultra-low-power, UFQFPN32", "Microcontrollers", "STM32L4", "4.1500", 28000, 10},
	{"STM32H743ZIT6", "STM32H743 High-Performance MCU", "ARM Cortex-M7 with FPU, 480 MHz, 2MB Flash, 1MB SRAM", "Microcontrollers", "STM32H7", "14.3500", 8000, 18},
	{"STM32H750VBT6", "STM32H750 Value Line MCU", "ARM Cortex-M7, 480 MHz, 128KB Flash, 1MB SRAM, value line", "Microcontrollers", "STM32H7", "5.8000", 12000, 14},
	{"STM32G071RBT6", "STM32G071 Entry-Level MCU", "ARM Cortex-M0+, 64 MHz, 128KB Flash, USB-C PD controller", "Microcontrollers", "STM32G0", "2.4500", 45000, 8},
	{"STM32G030F6P6", "STM32G030 Baseline MCU", "ARM Cortex-M0+, 64 MHz, 32KB Flash, cost-effective", "Microcontrollers", "STM32G0", "0.7800", 100000, 6},
	{"STM8S003F3P6", "STM8S003 8-bit MCU", "8-bit MCU, 16 MHz, 8KB Flash, 1KB SRAM, low cost", "Microcontrollers", "STM8S", "0.3200", 200000, 6},
	{"LIS3DHTR", "LIS3DH 3-axis Accelerometer", "MEMS digital output motion sensor, ultra-low-power, ±2g/±4g/±8g/±16g", "MEMS Sensors", "LIS", "1.1500", 50000, 8},
	{"LSM6DSOTR", "LSM6DSO IMU 6-axis", "iNEMO inertial module: 3D accelerometer + 3D gyroscope, AI-enhanced", "MEMS Sensors", "LSM", "2.8500", 30000, 10},
	{"LPS22HHTR", "LPS22HH Pressure Sensor", "MEMS nano pressure sensor, 260-1260 hPa absolute digital barometer", "MEMS Sensors", "LPS", "2.1000", 25000, 10},
	{"HTS221TR", "HTS221 Humidity & Temp Sensor", "Capacitive digital sensor for relative humidity and temperature", "MEMS Sensors", "HTS", "1.6500", 40000, 8},
	{"LSM303AGRTR", "LSM303AGR eCompass", "Ultra-compact 3D accelerometer + 3D magnetometer module", "MEMS Sensors", "LSM", "1.9500", 20000, 12},
	{"STF16N65M5", "N-channel 650V 12A MOSFET", "MDmesh M5 series, N-channel 650V, 12A, SuperMESH5 power MOSFET", "Power MOSFETs", "STF", "1.8500", 20000, 10},
	{"STD10NF10", "N-channel 100V 13A MOSFET", "N-channel 100V, 0.065 ohm, 13A, DPAK power MOSFET", "Power MOSFETs", "STD", "0.6500", 60000, 8},
	{"L7805CV", "L7805 5V Voltage Regulator", "Positive voltage regulator, 5V, 1.5A, TO-220", "Power Management", "L78", "0.4200", 150000, 6},
	{"L7812CV", "L7812 12V Voltage Regulator", "Positive voltage regulator, 12V, 1.5A, TO-220", "Power Management", "L78", "0.4500", 120000, 6},
	{"ST1S10PHR", "ST1S10 3A Step-Down Converter", "3A, 900 kHz synchronous step-down switching regulator", "Power Management", "ST1S", "1.3500", 35000, 10},
	{"L6234PD013TR", "L6234 BLDC Motor Driver", "Three-phase motor driver, 4A peak, 52V max", "Motor Drivers", "L6", "3.9500", 15000, 14},
	{"L298N", "L298N Dual Full-Bridge Driver", "Dual full-bridge motor driver, 46V, 2A per channel", "Motor Drivers", "L298", "3.4500", 25000, 10},
	{"BLUENRG-M2SP", "BlueNRG-M2 BLE Module", "Bluetooth Low Energy 5.2 network processor module", "Wireless", "BlueNRG", "4.7500", 10000, 16},
	{"BLUENRG-355MC", "BlueNRG-LP BLE SoC", "Bluetooth Low Energy 5.4 wireless SoC, ARM Cortex-M0+", "Wireless", "BlueNRG", "3.2000", 18000, 14},
	{"TSV911AILT", "TSV911 Rail-to-Rail Op-Amp", "Rail-to-rail I/O operational amplifier, 8 MHz, low noise", "Analog", "TSV", "0.5500", 80000, 8},
	{"TSH82IDT", "TSH82 Dual High-Speed Op-Amp", "Dual high-speed current feedback op-amp, 200 MHz", "Analog", "TSH", "1.2500", 30000, 10},
	{"STM32F103C8T6", "STM32F103 BluePill MCU", "ARM Cortex-M3, 72 MHz, 64KB Flash, 20KB SRAM, popular dev board MCU", "Microcontrollers", "STM32F1", "2.1500", 55000, 8},
	{"STM32WB55CGU6", "STM32WB55 Dual-Core BLE MCU", "Dual-core ARM Cortex-M4/M0+, BLE 5.4, 802.15.4, 1MB Flash", "Microcontrollers", "STM32WB", "6.2000", 14000, 16},
}

// statusWeights drives the status distribution of seeded orders.
var statusWeights = []struct {
	status string
	weight float64
}{
	{"delivered", 0.30},
	{"shipped", 0.25},
	{"processing", 0.20},
	{"confirmed", 0.15},
	{"pending", 0.10},
}

// Run seeds the database. It returns without writing anything if
// customers already exist.
func Run(ctx context.Context, store storage.Storage) error {
	existing, err := store.ListCustomers(ctx, storage.CustomerFilter{Limit: 1})
	if err != nil {
		return fmt.Errorf("seed: check existing data: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	slog.Info("seeding database")
	now := time.Now().UTC()
	// Fixed source so a fresh database always seeds the same dataset.
	rng := rand.New(rand.NewSource(42))

	createdCustomers := make([]*storage.Customer, 0, len(customers))
	for _, c := range customers {
		cust := &storage.Customer{
			ID:           uuid.NewString(),
			CompanyName:  c.company,
			ContactName:  c.contact,
			ContactEmail: c.email,
			Phone:        ptr(c.phone),
			Address:      ptr(c.address),
			City:         ptr(c.city),
			Country:      ptr(c.country),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.CreateCustomer(ctx, cust); err != nil {
			return fmt.Errorf("seed: create customer %s: %w", c.company, err)
		}
		createdCustomers = append(createdCustomers, cust)
	}

	createdProducts := make([]*storage.Product, 0, len(products))
	for _, p := range products {
		prod := &storage.Product{
			ID:            uuid.NewString(),
			PartNumber:    p.partNumber,
			Name:          p.name,
			Description:   ptr(p.description),
			Category:      p.category,
			Family:        ptr(p.family),
			UnitPrice:     decimal.RequireFromString(p.price),
			Currency:      "USD",
			StockQuantity: p.stock,
			LeadTimeDays:  ptr(p.leadDays),
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := store.CreateProduct(ctx, prod); err != nil {
			return fmt.Errorf("seed: create product %s: %w", p.partNumber, err)
		}
		createdProducts = append(createdProducts, prod)
	}

	for i := 0; i < orderCount; i++ {
		status := pickStatus(rng)
		cust := createdCustomers[rng.Intn(len(createdCustomers))]
		// At least 31 days back: seeded numbers carry the loop index as
		// suffix, so a seeded order in the current month would collide
		// with the count-derived sequence of the next live order.
		orderedAt := now.AddDate(0, 0, -(rng.Intn(150) + 31))
		orderNumber := fmt.Sprintf("ST-ORD-%s-%04d", orderedAt.Format("200601"), i+1)

		var shippedAt, deliveredAt *time.Time
		if status == "shipped" || status == "delivered" {
			t := orderedAt.AddDate(0, 0, rng.Intn(6)+2)
			shippedAt = &t
		}
		if status == "delivered" {
			t := shippedAt.AddDate(0, 0, rng.Intn(5)+1)
			deliveredAt = &t
		}

		items, total := pickItems(rng, createdProducts)

		order := &storage.Order{
			ID:              uuid.NewString(),
			OrderNumber:     orderNumber,
			CustomerID:      cust.ID,
			Status:          status,
			TotalAmount:     total,
			Currency:        "USD",
			ShippingAddress: ptr(fmt.Sprintf("%s, %s, %s", *cust.Address, *cust.City, *cust.Country)),
			OrderedAt:       orderedAt,
			ShippedAt:       shippedAt,
			DeliveredAt:     deliveredAt,
			CreatedAt:       orderedAt,
			UpdatedAt:       now,
			Items:           items,
		}
		for _, item := range items {
			item.OrderID = order.ID
		}
		if err := store.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("seed: create order %s: %w", orderNumber, err)
		}
	}

	slog.Info("seeded database",
		"customers", len(createdCustomers),
		"products", len(createdProducts),
		"orders", orderCount)
	return nil
}

func ptr[T any](v T) *T { return &v }

func pickStatus(rng *rand.Rand) string {
	r := rng.Float64()
	for _, sw := range statusWeights {
		if r < sw.weight {
			return sw.status
		}
		r -= sw.weight
	}
	return statusWeights[len(statusWeights)-1].status
}

// pickItems selects 1-5 distinct products with bulk quantities and
// returns the line items plus the order total.
func pickItems(rng *rand.Rand, products []*storage.Product) ([]*storage.OrderItem, decimal.Decimal) {
	numItems := rng.Intn(5) + 1
	perm := rng.Perm(len(products))

	items := make([]*storage.OrderItem, 0, numItems)
	total := decimal.Zero
	for _, idx := range perm[:numItems] {
		prod := products[idx]
		qty := rng.Intn(4951) + 50
		lineTotal := prod.UnitPrice.Mul(decimal.NewFromInt(int64(qty))).Round(2)
		total = total.Add(lineTotal)
		items = append(items, &storage.OrderItem{
			ID:        uuid.NewString(),
			ProductID: prod.ID,
			Quantity:  qty,
			UnitPrice: prod.UnitPrice,
			LineTotal: lineTotal,
		})
	}
	return items, total
}
