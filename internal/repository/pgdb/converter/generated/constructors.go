package generated

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}
