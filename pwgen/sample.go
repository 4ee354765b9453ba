package pwgen

// Sample draws `count` characters from `class`, independently and with
// replacement.
func Sample(class Class, count int, src Source) ([]byte, error) {
	if class.Len() == 0 {
		return nil, errEmptyClass
	}
	res := make([]byte, count)
	for i := range res {
		idx, err := src.Intn(class.Len())
		if err != nil {
			return nil, err
		}
		res[i] = class.chars[idx]
	}
	return res, nil
}

// Shuffle permutes `chars` in place, uniformly at random (Fisher-Yates).
func Shuffle(chars []byte, src Source) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}
