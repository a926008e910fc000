// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// motionstream polls a PMW3360 and streams motion samples to websocket
// clients, for pointing-device emulators running on another host.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/motionworks/devices/pmw3360"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// hub fans motion samples out to the connected websocket clients.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func (h *hub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			c.Close()
			delete(h.clients, c)
		}
	}
}

func main() {
	spiPort := flag.String("spi", "", "SPI port to use, empty for the first available")
	cpi := flag.Int("cpi", 800, "sensor resolution in counts per inch")
	interval := flag.Duration("interval", 2*time.Millisecond, "polling interval")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	motionPin := flag.String("motion-pin", "", "optional GPIO pin wired to the sensor MOTION line, polled only while low")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	p, err := spireg.Open(*spiPort)
	if err != nil {
		log.Fatalf("opening SPI: %v", err)
	}
	defer p.Close()

	opts := pmw3360.DefaultOpts
	opts.CPI = *cpi
	dev, err := pmw3360.New(p, &opts)
	if err != nil {
		log.Fatalf("initializing sensor: %v", err)
	}
	defer dev.Halt()
	log.Printf("sensor ready at %d cpi", *cpi)

	var motion gpio.PinIn
	if *motionPin != "" {
		motion = gpioreg.ByName(*motionPin)
		if motion == nil {
			log.Fatalf("no such pin %q", *motionPin)
		}
		if err := motion.In(gpio.PullUp, gpio.NoEdge); err != nil {
			log.Fatalf("configuring motion pin: %v", err)
		}
	}

	var (
		mu         sync.RWMutex
		lastSample pmw3360.MotionSample
		haveSample bool
	)
	h := &hub{clients: map[*websocket.Conn]bool{}}

	go func() {
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for range ticker.C {
			// The MOTION line is driven low while unread motion is pending.
			if motion != nil && motion.Read() == gpio.High {
				continue
			}
			s, err := dev.ReadBurst()
			if err != nil {
				log.Printf("burst read error: %v", err)
				continue
			}
			mu.Lock()
			lastSample = s
			haveSample = true
			mu.Unlock()
			if !s.Motion {
				continue
			}
			payload, err := json.Marshal(s)
			if err != nil {
				log.Printf("json marshal error: %v", err)
				continue
			}
			h.broadcast(payload)
		}
	}()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade error: %v", err)
			return
		}
		h.add(c)
	})

	// Latest sample, motion or not.
	http.HandleFunc("/api/motion", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()
		if !haveSample {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lastSample); err != nil {
			log.Printf("json encode error: %v", err)
		}
	})

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
