package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const hexChars = "0123456789abcdef"

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "tracker HTTP address")
	orderID := flag.String("order", "7628fa19bcb8e965bb73f8a180718f99", "order id that exists")
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, *orderID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int, alphabet string) string {
	id := make([]byte, length)
	for i := range id {
		id[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(id)
}

// doRequest mostly asks for a known order, sometimes for an unknown or malformed id.
func doRequest(baseURL, orderID string) {
	id := orderID
	switch rand.Intn(10) {
	case 0:
		id = randomID(32, hexChars)
	case 1:
		id = randomID(12, "ghijklmnopqrstuvwxyz")
	}

	url := baseURL + "/orders/" + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
