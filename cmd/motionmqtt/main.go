// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// motionmqtt polls a PMW3360 and publishes motion samples to an MQTT topic.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/motionworks/devices/pmw3360"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	clientID := flag.String("client-id", "pmw3360-producer", "MQTT client id")
	topic := flag.String("topic", "motion/sample", "MQTT topic to publish to")
	spiPort := flag.String("spi", "", "SPI port to use, empty for the first available")
	cpi := flag.Int("cpi", 800, "sensor resolution in counts per inch")
	interval := flag.Duration("interval", 10*time.Millisecond, "polling interval")
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

	mopts := mqtt.NewClientOptions().
		AddBroker(*broker).
		SetClientID(*clientID)
	client := mqtt.NewClient(mopts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("MQTT connect error: %v", token.Error())
	}
	defer client.Disconnect(250)
	log.Printf("connected to MQTT broker at %s", *broker)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for range ticker.C {
		s, err := dev.ReadBurst()
		if err != nil {
			log.Printf("burst read error: %v", err)
			continue
		}
		if !s.Motion {
			continue
		}
		payload, err := json.Marshal(s)
		if err != nil {
			log.Printf("json marshal error: %v", err)
			continue
		}
		token := client.Publish(*topic, 0, false, payload)
		token.Wait()
		if token.Error() != nil {
			log.Printf("publish error: %v", token.Error())
		}
	}
}
