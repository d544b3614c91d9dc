package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type order struct {
	ProductID       string `json:"product_id"`
	OrderType       string `json:"order_type"`
	DeliveryAddress string `json:"delivery_address"`
	PhoneNumber     string `json:"phone_number"`
	ZipCode         string `json:"zip_code"`
}

type registered struct {
	OrderID string `json:"order_id"`
}

var streets = []string{"C/LISBOA", "C/ALCALA", "AV. DE AMERICA", "C/ATOCHA", "PASEO DEL PRADO"}

func randomDigits(n int) string {
	var b strings.Builder
	for range n {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

func randomEAN13() string {
	digits := randomDigits(12)
	sum := 0
	for i, d := range digits {
		w := 1
		if i%2 == 1 {
			w = 3
		}
		sum += int(d-'0') * w
	}
	return digits + fmt.Sprint((10-sum%10)%10)
}

func generateRandomOrder() order {
	orderType := "Regular"
	if rand.Intn(3) == 0 {
		orderType = "Premium"
	}
	return order{
		ProductID:       randomEAN13(),
		OrderType:       orderType,
		DeliveryAddress: fmt.Sprintf("%s,%d, MADRID, SPAIN", streets[rand.Intn(len(streets))], rand.Intn(200)+1),
		PhoneNumber:     "+34" + randomDigits(9),
		ZipCode:         fmt.Sprintf("%05d", 1001+rand.Intn(52006-1001+1)),
	}
}

func register(ctx context.Context, baseURL string, o order) (string, error) {
	body, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("register order: %s", resp.Status)
	}

	var res registered
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	return res.OrderID, nil
}

// trigger builds a shipment trigger document; a few are broken on purpose to exercise the DLQ.
func trigger(orderID string) []byte {
	switch rand.Intn(10) {
	case 0:
		return []byte(`{"orderId":"` + orderID + `"}`)
	case 1:
		return []byte(`{"order_id":"` + orderID[:16] + `"}`)
	default:
		data, _ := json.Marshal(map[string]string{"order_id": orderID})
		return data
	}
}

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "tracker HTTP address")
	broker := flag.String("broker", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "shipment-requests", "shipment trigger topic")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*broker),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			orderID, err := register(ctx, *baseURL, generateRandomOrder())
			if err != nil {
				log.Println("failed to register order:", err)
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Value: trigger(orderID)}); err != nil {
				log.Println("failed to write trigger:", err)
				continue
			}
			log.Println("shipment requested", orderID)
		case <-ctx.Done():
			return
		}
	}
}
