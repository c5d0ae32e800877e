package rcc

// HPSYS peripherals with an enable/reset gate.
var (
	DMAC1    = Peripheral{"dmac1", 1, 0}
	MAILBOX1 = Peripheral{"mailbox1", 1, 1}
	PINMUX1  = Peripheral{"pinmux1", 1, 2}
	USART2   = Peripheral{"usart2", 1, 4}
	EZIP1    = Peripheral{"ezip1", 1, 5}
	EPIC     = Peripheral{"epic", 1, 6}
	LCDC1    = Peripheral{"lcdc1", 1, 7}
	I2S1     = Peripheral{"i2s1", 1, 8}
	SYSCFG1  = Peripheral{"syscfg1", 1, 10}
	EFUSEC   = Peripheral{"efusec", 1, 11}
	AES      = Peripheral{"aes", 1, 12}
	CRC1     = Peripheral{"crc1", 1, 13}
	TRNG     = Peripheral{"trng", 1, 14}
	GPTIM1   = Peripheral{"gptim1", 1, 15}
	GPTIM2   = Peripheral{"gptim2", 1, 16}
	BTIM1    = Peripheral{"btim1", 1, 17}
	BTIM2    = Peripheral{"btim2", 1, 18}
	SPI1     = Peripheral{"spi1", 1, 20}
	SPI2     = Peripheral{"spi2", 1, 21}
	EXTDMA   = Peripheral{"extdma", 1, 22}
	PDM1     = Peripheral{"pdm1", 1, 25}
	I2C1     = Peripheral{"i2c1", 1, 27}
	PTC1     = Peripheral{"ptc1", 1, 29}

	GPIO1    = Peripheral{"gpio1", 2, 0}
	MPI1     = Peripheral{"mpi1", 2, 1}
	MPI2     = Peripheral{"mpi2", 2, 2}
	SDMMC1   = Peripheral{"sdmmc1", 2, 4}
	USBC     = Peripheral{"usbc", 2, 6}
	I2C2     = Peripheral{"i2c2", 2, 8}
	ATIM1    = Peripheral{"atim1", 2, 9}
	USART3   = Peripheral{"usart3", 2, 12}
	AUDCODEC = Peripheral{"audcodec", 2, 19}
	AUDPRC   = Peripheral{"audprc", 2, 20}
	GPADC    = Peripheral{"gpadc", 2, 22}
	TSEN     = Peripheral{"tsen", 2, 23}
	I2C3     = Peripheral{"i2c3", 2, 25}
	I2C4     = Peripheral{"i2c4", 2, 26}
)

// Peripherals lists every gate in the table above.
var Peripherals = []Peripheral{
	DMAC1, MAILBOX1, PINMUX1, USART2, EZIP1, EPIC, LCDC1, I2S1, SYSCFG1,
	EFUSEC, AES, CRC1, TRNG, GPTIM1, GPTIM2, BTIM1, BTIM2, SPI1, SPI2,
	EXTDMA, PDM1, I2C1, PTC1,
	GPIO1, MPI1, MPI2, SDMMC1, USBC, I2C2, ATIM1, USART3, AUDCODEC, AUDPRC,
	GPADC, TSEN, I2C3, I2C4,
}

// LookupPeripheral finds a peripheral by name.
func LookupPeripheral(name string) (Peripheral, bool) {
	for _, p := range Peripherals {
		if p.Name == name {
			return p, true
		}
	}
	return Peripheral{}, false
}
