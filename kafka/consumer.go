package kafka

import (
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

type Consumer struct {
	consumer sarama.Consumer
}

func NewConsumer(broker string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Return.Errors = true

	var client sarama.Consumer
	var err error

	for i := 1; i <= 10; i++ {
		client, err = sarama.NewConsumer([]string{broker}, config)
		if err == nil {
			log.Println("Kafka consumer initialized")
			return &Consumer{consumer: client}, nil
		}

		log.Printf("Waiting for Kafka consumer... (%d/10) Error: %v", i, err)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("connect kafka consumer at %s: %w", broker, err)
}

// Consume attaches handler to a topic and keeps reading in the background.
func (c *Consumer) Consume(topic string, handler func([]byte)) error {
	pc, err := c.consumer.ConsumePartition(topic, 0, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("consume topic %s: %w", topic, err)
	}

	log.Printf("Listening on topic %s ...", topic)

	go func() {
		for {
			select {
			case msg := <-pc.Messages():
				handler(msg.Value)

			case err := <-pc.Errors():
				log.Printf("Kafka consumer error: %v", err)
			}
		}
	}()
	return nil
}
