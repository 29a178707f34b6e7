package interfaces

type ConsumerHandler interface {
	HandleMessage(key, message string) error
}

type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}
