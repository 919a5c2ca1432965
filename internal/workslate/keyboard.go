package workslate

// keyboardHoldReads is how many register reads a queued frame survives
// before the scanner advances to the next one (§4.6).
const keyboardHoldReads = 200

// KeyFrame is one entry in the keyboard's scan queue: the column mask the
// guest is expected to probe and the row bits that should come back when
// it does, plus the shift/special overlay bits. PowerButton frames bypass
// the column/row matrix entirely: they are intercepted out-of-band (§4.6)
// and consumed on the next register access regardless of probe mask.
type KeyFrame struct {
	ShiftPressed   bool
	SpecialPressed bool
	ProbeColumn    byte
	ResponseRow    byte
	PowerButton    bool
}

// Keyboard is the scanning matrix responder (§4.6): a FIFO of frames, each
// held across a fixed read budget so slow guest polling still observes it.
type Keyboard struct {
	frames    []KeyFrame
	lastProbe byte
	reads     int

	// PowerOn gates the power-button interception: if true a frame with
	// PowerButton set calls OnPowerOff (which clears port1 bit 2); if
	// false it calls OnReset. Wired by System.
	PowerOn    bool
	OnPowerOff func()
	OnReset    func()
}

func newKeyboard() *Keyboard {
	return &Keyboard{PowerOn: true}
}

// PushFrame enqueues a key event for the guest to discover on its next
// column scans.
func (k *Keyboard) PushFrame(f KeyFrame) {
	k.frames = append(k.frames, f)
}

func (k *Keyboard) write(mask byte) {
	k.lastProbe = mask
}

func (k *Keyboard) read() byte {
	if len(k.frames) == 0 {
		return 0
	}
	frame := k.frames[0]

	if frame.PowerButton {
		k.frames = k.frames[1:]
		k.reads = 0
		if k.PowerOn {
			k.PowerOn = false
			if k.OnPowerOff != nil {
				k.OnPowerOff()
			}
		} else {
			k.PowerOn = true
			if k.OnReset != nil {
				k.OnReset()
			}
		}
		return 0
	}

	var response byte
	if k.lastProbe&frame.ProbeColumn != 0 {
		response = frame.ResponseRow
	}
	if frame.ShiftPressed && k.lastProbe&0x01 != 0 {
		response |= 0x08
	}
	if frame.SpecialPressed && k.lastProbe&0x02 != 0 {
		response |= 0x20
	}

	k.reads++
	if k.reads >= keyboardHoldReads {
		k.reads = 0
		k.frames = k.frames[1:]
	}
	return response
}
