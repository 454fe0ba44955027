package main

type StubPasswordReader struct {
	password []byte
	err      error
	calls    int
}

func (pr *StubPasswordReader) ReadPassword() ([]byte, error) {
	pr.calls++
	return pr.password, pr.err
}
