//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"
)

// Pin map for a Pico with the Waveshare Pico-LCD-1.14 (240x135 ST7789).
const (
	lcdDC  = machine.GP8
	lcdCS  = machine.GP9
	lcdSCK = machine.GP10
	lcdSDO = machine.GP11
	lcdRST = machine.GP12
	lcdBL  = machine.GP13

	buttonPin   = machine.GP15 // key A, pulled up, low while pressed
	powerLatch  = machine.GP22 // holds the board regulator on
	batterySens = machine.ADC3 // VSYS through the on-board 1:3 divider

	max16Bit     uint16  = 65535
	sysV         float32 = 3.3
	vsysDivider  float32 = 3
	batteryCache         = 2 * time.Second
)

type tinyGoHAL struct {
	serial *uartSerial
	led    *pinLED
	button GPIOPin
	panel  *st7789Panel
	board  *tinyGoBoard
	clock  *tinyGoClock
}

// New returns the Pico HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	powerLatch.Configure(machine.PinConfig{Mode: machine.PinOutput})
	powerLatch.High()

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.InitADC()
	sensor := machine.ADC{Pin: batterySens}
	sensor.Configure(machine.ADCConfig{})

	h := &tinyGoHAL{
		serial: &uartSerial{uart: uart},
		led:    &pinLED{pin: ledPin},
		button: &machinePin{name: "BTN", pin: buttonPin},
		board:  &tinyGoBoard{adc: sensor, latch: powerLatch},
		clock:  newTinyGoClock(),
	}
	_ = h.button.Configure(GPIOModeInput, GPIOPullUp)

	if p, err := newST7789Panel(); err == nil {
		h.panel = p
	} else {
		h.serial.Write([]byte("hal: display init failed: " + err.Error() + "\r\n"))
	}
	return h
}

func (h *tinyGoHAL) Serial() Serial           { return h.serial }
func (h *tinyGoHAL) LED() LED                 { return h.led }
func (h *tinyGoHAL) Button() GPIOPin          { return h.button }
func (h *tinyGoHAL) ButtonPressedLevel() bool { return false }
func (h *tinyGoHAL) Board() Board             { return h.board }
func (h *tinyGoHAL) Clock() Clock             { return h.clock }

// This board has no GPS.
func (h *tinyGoHAL) Location() Location { return nil }

func (h *tinyGoHAL) Panel() Panel {
	if h.panel == nil {
		return nil
	}
	return h.panel
}

// st7789Panel adds backlight and sleep control to the driver as SetPower.
type st7789Panel struct {
	st7789.Device
}

func newST7789Panel() (*st7789Panel, error) {
	err := machine.SPI1.Configure(machine.SPIConfig{
		Frequency: 62_500_000,
		SCK:       lcdSCK,
		SDO:       lcdSDO,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}
	p := &st7789Panel{Device: st7789.New(machine.SPI1, lcdRST, lcdDC, lcdCS, lcdBL)}
	p.Configure(st7789.Config{
		Width:        135,
		Height:       240,
		Rotation:     drivers.Rotation90,
		RowOffset:    40,
		ColumnOffset: 53,
	})
	p.FillScreen(color.RGBA{A: 0xFF})
	p.EnableBacklight(false)
	return p, nil
}

func (p *st7789Panel) SetPower(on bool) error {
	if on {
		if err := p.Sleep(false); err != nil {
			return err
		}
		p.EnableBacklight(true)
		return nil
	}
	p.EnableBacklight(false)
	return p.Sleep(true)
}

type tinyGoBoard struct {
	adc   machine.ADC
	latch machine.Pin

	mv     int
	readAt time.Time
}

// BatteryMilliVolts samples VSYS at most every couple of seconds.
func (b *tinyGoBoard) BatteryMilliVolts() int {
	now := time.Now()
	if !b.readAt.IsZero() && now.Sub(b.readAt) < batteryCache {
		return b.mv
	}
	val := b.adc.Get()
	v := float32(val) / float32(max16Bit) * sysV * vsysDivider
	b.mv = int(v * 1000)
	b.readAt = now
	return b.mv
}

// PowerOff releases the regulator latch. On USB power the board stays up,
// so park here.
func (b *tinyGoBoard) PowerOff() {
	b.latch.Low()
	for {
		time.Sleep(time.Second)
	}
}

func (b *tinyGoBoard) Delay(d time.Duration) { time.Sleep(d) }
