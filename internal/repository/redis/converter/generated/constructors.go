package generated

func NewProductViewConverterImpl() *ProductViewConverterImpl {
	return &ProductViewConverterImpl{}
}
