package taxengine

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "taxengine")
