/*
Copyright 2026 The KubeLB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ingress normalizes parsed snapshot documents into report records.
package ingress

import (
	"strconv"
	"strings"

	"k8c.io/ingress-report/internal/constants"
	"k8c.io/ingress-report/internal/logger"

	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Record is the normalized summary of one Ingress resource. All fields are
// plain strings ready for table rendering; hosts, address and ports are
// comma-joined.
type Record struct {
	Namespace string
	Name      string
	Hosts     string
	Address   string
	Ports     string
}

// Issue identifies an Ingress whose hosts could not be fully extracted.
// Issues are accumulated during extraction and reported once at the end of
// the run, so no second pass over the snapshot files is needed.
type Issue struct {
	Cluster   string
	Namespace string
	Name      string
	Hosts     string
}

// Extract walks the items of a parsed snapshot and produces one Record per
// Ingress, in document order. Missing optional fields are substituted with
// placeholders and reported as warnings, never as errors.
func Extract(cluster string, list *networkingv1.IngressList) ([]Record, []Issue) {
	log := logger.WithCluster(cluster)

	records := make([]Record, 0, len(list.Items))
	var issues []Issue

	for _, item := range list.Items {
		namespace := item.Namespace
		name := item.Name

		log.Debug("Extracting ingress data", "namespace", namespace, "name", name)

		hosts := extractHosts(&item)
		if hosts == "" || strings.Contains(hosts, constants.PlaceholderValue) {
			log.Warn("Missing hosts for ingress", "namespace", namespace, "name", name)
			issues = append(issues, Issue{
				Cluster:   cluster,
				Namespace: namespace,
				Name:      name,
				Hosts:     hosts,
			})
		}

		address := extractAddress(&item)
		// Unlike hosts, an address made up of placeholders is accepted as
		// long as the load balancer reported any entries at all.
		if address == "" {
			log.Warn("Missing IP address for ingress", "namespace", namespace, "name", name)
		}

		records = append(records, Record{
			Namespace: namespace,
			Name:      name,
			Hosts:     hosts,
			Address:   address,
			Ports:     extractPorts(&item),
		})
	}

	return records, issues
}

// extractHosts joins the host of every rule, substituting the placeholder for
// rules without one. An ingress without rules yields the empty string.
func extractHosts(item *networkingv1.Ingress) string {
	var hosts []string
	for _, rule := range item.Spec.Rules {
		if rule.Host != "" {
			hosts = append(hosts, rule.Host)
		} else {
			hosts = append(hosts, constants.PlaceholderValue)
		}
	}
	return strings.Join(hosts, constants.JoinSeparator)
}

// extractAddress joins the IP of every load balancer ingress entry,
// substituting the placeholder for entries without one.
func extractAddress(item *networkingv1.Ingress) string {
	var addrs []string
	for _, lb := range item.Status.LoadBalancer.Ingress {
		if lb.IP != "" {
			addrs = append(addrs, lb.IP)
		} else {
			addrs = append(addrs, constants.PlaceholderValue)
		}
	}
	return strings.Join(addrs, constants.JoinSeparator)
}

// extractPorts collects the unique backend service ports of an ingress.
// TLS implies 443; paths without an explicit port number count as 80.
// The joined result is sorted for deterministic reports, and an ingress with
// no TLS and no paths falls back to "80" so the column is never empty.
func extractPorts(item *networkingv1.Ingress) string {
	ports := sets.New[string]()

	if len(item.Spec.TLS) > 0 {
		ports.Insert(constants.HTTPSPort)
	}

	for _, rule := range item.Spec.Rules {
		if rule.HTTP == nil {
			continue
		}
		for _, path := range rule.HTTP.Paths {
			if path.Backend.Service == nil || path.Backend.Service.Port.Number == 0 {
				ports.Insert(constants.HTTPPort)
				continue
			}
			ports.Insert(strconv.Itoa(int(path.Backend.Service.Port.Number)))
		}
	}

	if ports.Len() == 0 {
		return constants.HTTPPort
	}
	return strings.Join(sets.List(ports), constants.JoinSeparator)
}
